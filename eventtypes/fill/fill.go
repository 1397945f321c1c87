package fill

import (
	"github.com/shopspring/decimal"
)

// IsFill returns whether the event is a fill event
func (f *Fill) IsFill() bool {
	return true
}

// GetAmount returns the signed amount
func (f *Fill) GetAmount() int64 {
	return f.Amount
}

// GetQuantity returns the unsigned number of units filled
func (f *Fill) GetQuantity() int64 {
	if f.Amount < 0 {
		return -f.Amount
	}
	return f.Amount
}

// IsBuy returns whether the fill increases exposure
func (f *Fill) IsBuy() bool {
	return f.Amount > 0
}

// IsSell returns whether the fill decreases exposure
func (f *Fill) IsSell() bool {
	return f.Amount < 0
}

// GetClosePrice returns the mark price at execution
func (f *Fill) GetClosePrice() decimal.Decimal {
	return f.ClosePrice
}

// GetFlatFee returns the per-unit flat fee
func (f *Fill) GetFlatFee() decimal.Decimal {
	return f.FlatFee
}

// GetCommissionRate returns the proportional commission rate
func (f *Fill) GetCommissionRate() decimal.Decimal {
	return f.CommissionRate
}

// GetOrderID returns the id of the order that raised the fill
func (f *Fill) GetOrderID() string {
	return f.OrderID
}

// Fee returns the total transaction charge at the supplied reference price,
// commission on traded value plus the flat fee per unit, charged on every
// fill regardless of direction
func (f *Fill) Fee(price decimal.Decimal) decimal.Decimal {
	q := decimal.NewFromInt(f.GetQuantity())
	return f.CommissionRate.Mul(price).Mul(q).Add(f.FlatFee.Mul(q))
}
