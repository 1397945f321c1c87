package strategies

import (
	"errors"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/signal"
)

// ErrStrategyNotFound is returned when a strategy name has no registered
// implementation
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler is the pluggable strategy contract. OnMarket is invoked once per
// market update, it may only consult currently visible bars and returns at
// most one signal, nil meaning no action
type Handler interface {
	Name() string
	Description() string
	OnMarket(data.Handler) (signal.Event, error)
}
