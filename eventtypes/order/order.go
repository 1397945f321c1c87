package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// GetAmount returns the signed amount
func (o *Order) GetAmount() int64 {
	return o.Amount
}

// SetAmount sets the signed amount
func (o *Order) SetAmount(i int64) {
	o.Amount = i
}

// GetOrderType returns the order type
func (o *Order) GetOrderType() Type {
	return o.OrderType
}

// GetLimit returns the limit price, zero for market orders
func (o *Order) GetLimit() decimal.Decimal {
	return o.Limit
}

// IsBuy returns whether the order increases exposure
func (o *Order) IsBuy() bool {
	return o.Amount > 0
}

// IsSell returns whether the order decreases exposure
func (o *Order) IsSell() bool {
	return o.Amount < 0
}

// SetID sets the order id
func (o *Order) SetID(id string) {
	o.ID = id
}

// GetID returns the ID
func (o *Order) GetID() string {
	return o.ID
}

// Print outputs a summary of the order to the console
func (o *Order) Print() {
	fmt.Printf("Order: Symbol=%v, Timestamp=%v, Type=%v, Amount=%v\n",
		o.Symbol, o.Time, o.OrderType, o.Amount)
}
