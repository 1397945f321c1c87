// Package portfolio tracks cash and positions across the lifetime of a
// backtest run
package portfolio

import (
	"fmt"
	"sort"

	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/quantfoundry/backtester/ordergen"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Setup creates a portfolio with its starting balance and collaborators
func Setup(dh data.Handler, g ordergen.Generator, initialCapital, contractValue decimal.Decimal) (*Portfolio, error) {
	if dh == nil {
		return nil, errDataHandlerUnset
	}
	if g == nil {
		return nil, errOrderGeneratorUnset
	}
	if !initialCapital.IsPositive() {
		return nil, errInitialCapital
	}
	if !contractValue.IsPositive() {
		return nil, errContractValue
	}
	return &Portfolio{
		dataHandler:    dh,
		generator:      g,
		initialCapital: initialCapital,
		balance:        initialCapital,
		totalValue:     initialCapital,
		contractValue:  contractValue,
		positions:      make(map[string]*Position),
	}, nil
}

// Update recomputes total value from the current balance plus the
// mark-to-market of every position. The recompute is always performed in full
// rather than incrementally so floating point drift cannot accumulate over
// the backtest horizon, calling it twice with no intervening fill yields the
// same total
func (p *Portfolio) Update() error {
	total := p.balance
	for symbol, pos := range p.positions {
		if pos.Quantity == 0 {
			continue
		}
		mark, err := p.dataHandler.GetLatestBarValue(symbol, data.FieldClose)
		if err != nil {
			return err
		}
		total = total.Add(mark.Mul(decimal.NewFromInt(pos.Quantity)).Mul(p.contractValue))
	}
	p.totalValue = total
	return nil
}

// OnSignal delegates signal to order translation to the order generator. A
// nil order means no action is to be taken
func (p *Portfolio) OnSignal(ev signal.Event) (*order.Order, error) {
	if ev == nil || ev.IsNil() {
		return nil, common.ErrNilEvent
	}
	o, err := p.generator.GenerateOrder(ev)
	if err != nil {
		return nil, err
	}
	if o != nil {
		logrus.WithFields(logrus.Fields{
			"symbol": o.GetSymbol(),
			"amount": o.GetAmount(),
			"offset": o.GetOffset(),
		}).Debug("signal translated to order")
	}
	return o, nil
}

// OnFill applies a fill to the position mapping and cash balance. The latest
// close for the fill's symbol is the execution reference price, including for
// the entry price recorded on a first fill. Quantity always reflects
// cumulative signed fills and flat positions persist with quantity zero
func (p *Portfolio) OnFill(ev fill.Event) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	amount := ev.GetAmount()
	if amount == 0 {
		return fmt.Errorf("%w for %v", errZeroAmountFill, ev.GetSymbol())
	}
	price, err := p.dataHandler.GetLatestBarValue(ev.GetSymbol(), data.FieldClose)
	if err != nil {
		return err
	}

	pos, ok := p.positions[ev.GetSymbol()]
	if !ok {
		pos = &Position{}
		p.positions[ev.GetSymbol()] = pos
	}
	old := pos.Quantity
	updated := old + amount
	value := price.Mul(decimal.NewFromInt(ev.GetQuantity()))

	if amount > 0 {
		p.balance = p.balance.Sub(value)
		switch {
		case old > 0:
			pos.EntryPrice = blendEntry(pos.EntryPrice, old, price, amount)
		case old == 0:
			pos.EntryPrice = price
		case updated > 0:
			// covered the short and flipped through zero
			pos.EntryPrice = price
		}
	} else {
		p.balance = p.balance.Add(value)
		switch {
		case old < 0:
			pos.EntryPrice = blendEntry(pos.EntryPrice, old, price, amount)
		case old == 0:
			pos.EntryPrice = price
		case updated < 0:
			pos.EntryPrice = price
		}
	}
	pos.Quantity = updated
	p.balance = p.balance.Sub(ev.Fee(price))

	logrus.WithFields(logrus.Fields{
		"symbol":   ev.GetSymbol(),
		"amount":   amount,
		"price":    price,
		"quantity": pos.Quantity,
		"entry":    pos.EntryPrice,
		"balance":  p.balance,
	}).Debug("fill applied")
	return nil
}

// blendEntry returns the volume weighted average entry across the existing
// position and the new leg
func blendEntry(entry decimal.Decimal, oldQty int64, price decimal.Decimal, fillQty int64) decimal.Decimal {
	o := decimal.NewFromInt(abs(oldQty))
	f := decimal.NewFromInt(abs(fillQty))
	return entry.Mul(o).Add(price.Mul(f)).Div(o.Add(f))
}

func abs(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}

// GetPosition returns a copy of the position held for symbol
func (p *Portfolio) GetPosition(symbol string) (Position, bool) {
	pos, ok := p.positions[symbol]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// Balance returns the current cash balance
func (p *Portfolio) Balance() decimal.Decimal {
	return p.balance
}

// TotalValue returns cash plus the mark-to-market of all positions as of the
// last Update call
func (p *Portfolio) TotalValue() decimal.Decimal {
	return p.totalValue
}

// InitialCapital returns the starting balance
func (p *Portfolio) InitialCapital() decimal.Decimal {
	return p.initialCapital
}

// PrintStatus renders a summary of the portfolio to the console, it mutates
// no state
func (p *Portfolio) PrintStatus() {
	fmt.Printf("Portfolio Summary: Cash=%v, Total Value=%v\n", p.balance, p.totalValue)
	symbols := make([]string, 0, len(p.positions))
	for s := range p.positions {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		pos := p.positions[s]
		fmt.Printf("  %v: quantity=%v entry=%v\n", s, pos.Quantity, pos.EntryPrice)
	}
}

// Reset returns the portfolio to its starting state
func (p *Portfolio) Reset() {
	p.balance = p.initialCapital
	p.totalValue = p.initialCapital
	p.positions = make(map[string]*Position)
}
