// Package ordergen maps trading signals into concrete orders. Implementations
// are substitutable without touching the portfolio or dispatch loop
package ordergen

import (
	"errors"

	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
)

// ErrInvalidSize is returned when a fixed generator is built with a
// non-positive size
var ErrInvalidSize = errors.New("order size must be positive")

// Generator turns a signal into an order, nil means no order is to be made
type Generator interface {
	GenerateOrder(signal.Event) (*order.Order, error)
}

// Naive orders a fixed quantity of one unit in the signalled direction
type Naive struct{}

// Fixed orders a configured quantity in the signalled direction
type Fixed struct {
	Size int64
}
