package signal

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/shopspring/decimal"
)

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// SetDirection sets the direction
func (s *Signal) SetDirection(d common.Direction) {
	s.Direction = d
}

// GetDirection returns the direction
func (s *Signal) GetDirection() common.Direction {
	return s.Direction
}

// GetStrength returns the advisory strength of the signal
func (s *Signal) GetStrength() decimal.Decimal {
	return s.Strength
}

// GetClosePrice returns the price
func (s *Signal) GetClosePrice() decimal.Decimal {
	return s.ClosePrice
}

// SetPrice sets the price
func (s *Signal) SetPrice(f decimal.Decimal) {
	s.ClosePrice = f
}

// IsNil says if the event is nil
func (s *Signal) IsNil() bool {
	return s == nil
}
