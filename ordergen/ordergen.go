package ordergen

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
)

// GenerateOrder returns a market order for a single unit, bought on a long
// signal and sold on a short signal
func (n *Naive) GenerateOrder(s signal.Event) (*order.Order, error) {
	return sized(s, 1)
}

// GenerateOrder returns a market order for the configured size in the
// signalled direction
func (f *Fixed) GenerateOrder(s signal.Event) (*order.Order, error) {
	if f.Size <= 0 {
		return nil, ErrInvalidSize
	}
	return sized(s, f.Size)
}

func sized(s signal.Event, size int64) (*order.Order, error) {
	if s == nil || s.IsNil() {
		return nil, common.ErrNilEvent
	}
	var amount int64
	switch s.GetDirection() {
	case common.Long:
		amount = size
	case common.Short:
		amount = -size
	default:
		return nil, nil
	}
	return &order.Order{
		Base: event.Base{
			Offset: s.GetOffset(),
			Symbol: s.GetSymbol(),
			Time:   s.GetTime(),
			Reason: s.GetReason(),
		},
		OrderType: order.Market,
		Amount:    amount,
	}, nil
}
