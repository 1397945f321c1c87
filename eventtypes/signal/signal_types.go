package signal

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Signal is a trading stance raised by a strategy from currently visible bars.
// Strength is advisory and only consumed by order sizing logic
type Signal struct {
	event.Base
	Direction  common.Direction `json:"direction"`
	Strength   decimal.Decimal  `json:"strength"`
	ClosePrice decimal.Decimal  `json:"close-price"`
}

// Event handler is used for getting trade signal details
type Event interface {
	common.Event
	common.Directioner
	IsSignal() bool
	GetStrength() decimal.Decimal
	GetClosePrice() decimal.Decimal
	SetPrice(decimal.Decimal)
	IsNil() bool
}
