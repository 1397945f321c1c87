// Package exchange simulates order execution for the backtester
package exchange

import (
	"github.com/gofrs/uuid"
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// New creates an execution simulator with its fee model
func New(commission, flatFee decimal.Decimal) (*Exchange, error) {
	if commission.IsNegative() || commission.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errInvalidCommission
	}
	if flatFee.IsNegative() {
		return nil, errInvalidFlatFee
	}
	return &Exchange{
		commission: commission,
		flatFee:    flatFee,
	}, nil
}

// ExecuteOrder fills the order in full at the latest close for its symbol,
// preserving symbol and amount unchanged and stamping the fee model onto the
// resulting fill
func (e *Exchange) ExecuteOrder(o order.Event, dh data.Handler) (*fill.Fill, error) {
	if o == nil {
		return nil, common.ErrNilEvent
	}
	if dh == nil {
		return nil, common.ErrNilArguments
	}
	price, err := dh.GetLatestBarValue(o.GetSymbol(), data.FieldClose)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	if o.GetID() == "" {
		o.SetID(id.String())
	}
	f := &fill.Fill{
		Base: event.Base{
			Offset: o.GetOffset(),
			Symbol: o.GetSymbol(),
			Time:   o.GetTime(),
			Reason: o.GetReason(),
		},
		OrderID:        o.GetID(),
		Amount:         o.GetAmount(),
		ClosePrice:     price,
		FlatFee:        e.flatFee,
		CommissionRate: e.commission,
	}
	logrus.WithFields(logrus.Fields{
		"symbol":   f.GetSymbol(),
		"amount":   f.GetAmount(),
		"price":    price,
		"order-id": f.GetOrderID(),
	}).Debug("order executed")
	return f, nil
}
