// Package buyandhold is a strategy that takes a long position in each symbol
// on its first visible bar and then does nothing
package buyandhold

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/quantfoundry/backtester/strategies/base"
)

// Name is the strategy name
const Name = "buyandhold"

const description = `Buys each symbol on its first bar and holds it for the remainder of the run`

// Strategy is an implementation of the strategies.Handler interface
type Strategy struct {
	base.Strategy
	entered map[string]bool
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides an overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnMarket raises one long signal per symbol over the lifetime of the run
func (s *Strategy) OnMarket(d data.Handler) (signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	if s.entered == nil {
		s.entered = make(map[string]bool)
	}
	for _, symbol := range d.Symbols() {
		if s.entered[symbol] {
			continue
		}
		es, err := s.GetBaseSignal(d, symbol)
		if err != nil {
			return nil, err
		}
		s.entered[symbol] = true
		es.SetDirection(common.Long)
		es.AppendReason("first visible bar, entering")
		return &es, nil
	}
	return nil, nil
}
