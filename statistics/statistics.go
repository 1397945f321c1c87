package statistics

import (
	"fmt"
	"time"

	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/market"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/shopspring/decimal"
)

// SetStrategyName stores the current strategy name for reporting
func (s *Statistic) SetStrategyName(name string) {
	s.strategyName = name
}

// SetInitialCapital stores the starting funds used as the return baseline
func (s *Statistic) SetInitialCapital(capital decimal.Decimal) {
	s.initialCapital = capital
}

// TrackEvent tallies a processed event by its type
func (s *Statistic) TrackEvent(ev common.Event) {
	switch ev.(type) {
	case market.Event:
		s.marketEvents++
	case signal.Event:
		s.signalEvents++
	case order.Event:
		s.orderEvents++
	case fill.Event:
		s.fillEvents++
	}
}

// TrackTransaction records an executed fill
func (s *Statistic) TrackTransaction(f fill.Event) {
	if f == nil {
		return
	}
	s.transactions = append(s.transactions, f)
}

// AddEquityPoint appends a total-value snapshot to the equity curve
func (s *Statistic) AddEquityPoint(t time.Time, offset int64, totalValue decimal.Decimal) {
	s.equity = append(s.equity, EquityPoint{
		Time:       t,
		Offset:     offset,
		TotalValue: totalValue,
	})
}

// TotalEquityPoints returns the number of snapshots taken
func (s *Statistic) TotalEquityPoints() int {
	return len(s.equity)
}

// FinalEquity returns the last recorded total value, or the initial
// capital when no snapshot was taken
func (s *Statistic) FinalEquity() decimal.Decimal {
	if len(s.equity) == 0 {
		return s.initialCapital
	}
	return s.equity[len(s.equity)-1].TotalValue
}

// TotalReturn returns the percentage gain or loss against initial capital
func (s *Statistic) TotalReturn() decimal.Decimal {
	if s.initialCapital.IsZero() {
		return decimal.Zero
	}
	return s.FinalEquity().Sub(s.initialCapital).
		Div(s.initialCapital).
		Mul(decimal.NewFromInt(100))
}

// MaxDrawdown returns the largest peak-to-trough decline of the equity
// curve as a percentage of the peak
func (s *Statistic) MaxDrawdown() decimal.Decimal {
	if len(s.equity) == 0 {
		return decimal.Zero
	}
	peak := s.equity[0].TotalValue
	maxDraw := decimal.Zero
	for i := range s.equity {
		if s.equity[i].TotalValue.GreaterThan(peak) {
			peak = s.equity[i].TotalValue
		}
		if peak.IsZero() {
			continue
		}
		draw := peak.Sub(s.equity[i].TotalValue).
			Div(peak).
			Mul(decimal.NewFromInt(100))
		if draw.GreaterThan(maxDraw) {
			maxDraw = draw
		}
	}
	return maxDraw
}

// PrintResult renders the run summary to stdout
func (s *Statistic) PrintResult() {
	fmt.Println("------------------Run Results-------------------")
	fmt.Printf("Strategy: %s\n", s.strategyName)
	fmt.Printf("Market events: %d\n", s.marketEvents)
	fmt.Printf("Signal events: %d\n", s.signalEvents)
	fmt.Printf("Order events: %d\n", s.orderEvents)
	fmt.Printf("Fill events: %d\n", s.fillEvents)
	fmt.Printf("Transactions: %d\n", len(s.transactions))
	fmt.Printf("Initial capital: %s\n", s.initialCapital.Round(2))
	fmt.Printf("Final equity: %s\n", s.FinalEquity().Round(2))
	fmt.Printf("Total return: %s%%\n", s.TotalReturn().Round(4))
	fmt.Printf("Max drawdown: %s%%\n", s.MaxDrawdown().Round(4))
}

// Reset returns the statistic tracker to its starting state
func (s *Statistic) Reset() {
	if s == nil {
		return
	}
	*s = Statistic{}
}
