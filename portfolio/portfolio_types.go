package portfolio

import (
	"errors"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/quantfoundry/backtester/ordergen"
	"github.com/shopspring/decimal"
)

var (
	errDataHandlerUnset    = errors.New("data handler unset")
	errOrderGeneratorUnset = errors.New("order generator unset")
	errInitialCapital      = errors.New("initial capital must be positive")
	errContractValue       = errors.New("contract value must be positive")
	errZeroAmountFill      = errors.New("fill with zero amount")
)

// Position tracks signed exposure for a single symbol. EntryPrice is the
// volume weighted average of all same-direction fills since the position was
// last flat, it resets to the mark price of the fill that flips the position
// through zero. A flat position persists with quantity zero, the stale entry
// contributes nothing to valuation
type Position struct {
	EntryPrice decimal.Decimal
	Quantity   int64
}

// Portfolio is the accounting engine. It owns the cash balance and position
// mapping, consumes fills to mutate them, consumes market updates to mark to
// market and delegates signal to order translation to the order generator
type Portfolio struct {
	dataHandler    data.Handler
	generator      ordergen.Generator
	initialCapital decimal.Decimal
	balance        decimal.Decimal
	totalValue     decimal.Decimal
	contractValue  decimal.Decimal
	positions      map[string]*Position
}

// Handler contains all functionality expected from a portfolio manager
type Handler interface {
	Update() error
	OnSignal(signal.Event) (*order.Order, error)
	OnFill(fill.Event) error
	GetPosition(symbol string) (Position, bool)
	Balance() decimal.Decimal
	TotalValue() decimal.Decimal
	InitialCapital() decimal.Decimal
	PrintStatus()
	Reset()
}
