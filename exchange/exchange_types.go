package exchange

import (
	"errors"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/shopspring/decimal"
)

var (
	errInvalidCommission = errors.New("commission must be a fraction between 0 and 1")
	errInvalidFlatFee    = errors.New("flat fee cannot be negative")
)

// Exchange simulates execution, filling the full requested quantity
// immediately at the latest mark price with no slippage or rejection. Any
// realistic execution model is a drop-in replacement behind ExecutionHandler
type Exchange struct {
	commission decimal.Decimal
	flatFee    decimal.Decimal
}

// ExecutionHandler is the contract the dispatch loop executes orders through
type ExecutionHandler interface {
	ExecuteOrder(order.Event, data.Handler) (*fill.Fill, error)
}
