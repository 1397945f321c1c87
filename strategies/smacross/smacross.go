// Package smacross signals when a fast simple moving average crosses a slow one
package smacross

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/quantfoundry/backtester/strategies/base"
	"github.com/thrasher-corp/gct-ta/indicators"
)

const (
	// Name is the strategy name
	Name = "smacross"

	defaultFastPeriod = 10
	defaultSlowPeriod = 30

	description = `Goes long when the fast simple moving average crosses above the slow one and short when it crosses below`
)

// Strategy is an implementation of the strategies.Handler interface
type Strategy struct {
	base.Strategy
	// FastPeriod is the short lookback, 10 when unset
	FastPeriod int
	// SlowPeriod is the long lookback, 30 when unset
	SlowPeriod int

	lastAbove map[string]bool
	primed    map[string]bool
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides an overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnMarket compares fast and slow averages over visible closes and raises a
// signal for the first symbol whose relationship flipped since the last bar
func (s *Strategy) OnMarket(d data.Handler) (signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	fast := s.FastPeriod
	if fast <= 0 {
		fast = defaultFastPeriod
	}
	slow := s.SlowPeriod
	if slow <= 0 {
		slow = defaultSlowPeriod
	}
	if s.lastAbove == nil {
		s.lastAbove = make(map[string]bool)
		s.primed = make(map[string]bool)
	}

	for _, symbol := range d.Symbols() {
		closes, err := d.GetLatestBarValues(symbol, data.FieldClose, slow)
		if err != nil {
			return nil, err
		}
		if len(closes) < slow {
			continue
		}
		massaged := make([]float64, len(closes))
		for i := range closes {
			massaged[i], _ = closes[i].Float64()
		}
		fastMA := indicators.SMA(massaged, fast)
		slowMA := indicators.SMA(massaged, slow)
		above := fastMA[len(fastMA)-1] > slowMA[len(slowMA)-1]

		if !s.primed[symbol] {
			s.primed[symbol] = true
			s.lastAbove[symbol] = above
			continue
		}
		if above == s.lastAbove[symbol] {
			continue
		}
		s.lastAbove[symbol] = above

		es, err := s.GetBaseSignal(d, symbol)
		if err != nil {
			return nil, err
		}
		if above {
			es.SetDirection(common.Long)
			es.AppendReason("fast SMA crossed above slow SMA")
		} else {
			es.SetDirection(common.Short)
			es.AppendReason("fast SMA crossed below slow SMA")
		}
		return &es, nil
	}
	return nil, nil
}
