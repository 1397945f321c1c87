// Package base provides shared functionality for strategy implementations
package base

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/quantfoundry/backtester/eventtypes/signal"
)

// Strategy is the base implementation all strategies build upon
type Strategy struct{}

// GetBaseSignal returns a signal stamped with the latest visible bar for the
// symbol, defaulting to taking no action
func (s *Strategy) GetBaseSignal(d data.Handler, symbol string) (signal.Signal, error) {
	if d == nil {
		return signal.Signal{}, common.ErrNilArguments
	}
	latest, err := d.GetLatestBar(symbol)
	if err != nil {
		return signal.Signal{}, err
	}
	if latest == nil {
		return signal.Signal{}, common.ErrNilEvent
	}
	return signal.Signal{
		Base: event.Base{
			Offset: d.Offset(),
			Symbol: symbol,
			Time:   latest.Time,
		},
		Direction:  common.DoNothing,
		ClosePrice: latest.Close,
	}, nil
}
