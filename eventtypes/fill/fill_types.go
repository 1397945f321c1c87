package fill

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Fill is an event that details the result of placing an order. As with
// orders, the sign of Amount encodes direction. ClosePrice is the mark price
// at the moment of execution, FlatFee is a per-unit currency charge and
// CommissionRate a fraction of traded value
type Fill struct {
	event.Base
	OrderID        string          `json:"order-id"`
	Amount         int64           `json:"amount"`
	ClosePrice     decimal.Decimal `json:"close-price"`
	FlatFee        decimal.Decimal `json:"flat-fee"`
	CommissionRate decimal.Decimal `json:"commission-rate"`
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	IsFill() bool
	GetAmount() int64
	GetQuantity() int64
	IsBuy() bool
	IsSell() bool
	GetClosePrice() decimal.Decimal
	GetFlatFee() decimal.Decimal
	GetCommissionRate() decimal.Decimal
	GetOrderID() string
	Fee(price decimal.Decimal) decimal.Decimal
}
