// Package rsi signals from the relative strength index of recent closes
package rsi

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/quantfoundry/backtester/strategies/base"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gct-ta/indicators"
)

const (
	// Name is the strategy name
	Name = "rsi"

	defaultPeriod = 14

	description = `The relative strength index charts the current and historical strength or weakness of a market based on the closing prices of a recent trading period`
)

// Strategy is an implementation of the strategies.Handler interface
type Strategy struct {
	base.Strategy
	// Period is the RSI lookback, 14 when unset
	Period int
	// Low buys at or below this level, 30 when unset
	Low decimal.Decimal
	// High sells at or above this level, 70 when unset
	High decimal.Decimal
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides an overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnMarket computes the RSI over visible closes for each symbol and raises a
// signal for the first symbol at or beyond a threshold
func (s *Strategy) OnMarket(d data.Handler) (signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	period := s.Period
	if period <= 0 {
		period = defaultPeriod
	}
	low := s.Low
	if low.IsZero() {
		low = decimal.NewFromInt(30)
	}
	high := s.High
	if high.IsZero() {
		high = decimal.NewFromInt(70)
	}

	for _, symbol := range d.Symbols() {
		closes, err := d.GetLatestBarValues(symbol, data.FieldClose, period+1)
		if err != nil {
			return nil, err
		}
		if len(closes) < period+1 {
			// not enough data for signal generation
			continue
		}
		massaged := make([]float64, len(closes))
		for i := range closes {
			massaged[i], _ = closes[i].Float64()
		}
		rsi := indicators.RSI(massaged, period)
		latest := decimal.NewFromFloat(rsi[len(rsi)-1])

		var direction common.Direction
		switch {
		case latest.GreaterThanOrEqual(high):
			direction = common.Short
		case latest.LessThanOrEqual(low):
			direction = common.Long
		default:
			continue
		}

		es, err := s.GetBaseSignal(d, symbol)
		if err != nil {
			return nil, err
		}
		es.SetDirection(direction)
		es.Strength = latest
		es.AppendReasonf("RSI at %v", latest)
		return &es, nil
	}
	return nil, nil
}
