package order

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Type enforces a standard for order types
type Type string

const (
	// Market order type
	Market Type = "MARKET"
	// Limit order type
	Limit Type = "LIMIT"
)

// Order contains all details for an order event. The sign of Amount is the
// single source of truth for direction, positive amounts buy, negative
// amounts sell
type Order struct {
	event.Base
	ID        string          `json:"id"`
	OrderType Type            `json:"order-type"`
	Amount    int64           `json:"amount"`
	Limit     decimal.Decimal `json:"limit"`
}

// Event inherits common event interfaces along with extra functions related to handling orders
type Event interface {
	common.Event
	IsOrder() bool
	GetAmount() int64
	SetAmount(int64)
	GetOrderType() Type
	GetLimit() decimal.Decimal
	IsBuy() bool
	IsSell() bool
	SetID(string)
	GetID() string
}
