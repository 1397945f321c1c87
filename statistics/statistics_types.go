package statistics

import (
	"time"

	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/shopspring/decimal"
)

// EquityPoint is a snapshot of total portfolio value after a time step
type EquityPoint struct {
	Time       time.Time
	Offset     int64
	TotalValue decimal.Decimal
}

// Statistic tracks events and equity over a run and renders the final report
type Statistic struct {
	strategyName   string
	initialCapital decimal.Decimal
	equity         []EquityPoint
	transactions   []fill.Event
	marketEvents   int64
	signalEvents   int64
	orderEvents    int64
	fillEvents     int64
}

// Handler is all functionality required for statistics tracking
type Handler interface {
	SetStrategyName(string)
	SetInitialCapital(decimal.Decimal)
	TrackEvent(common.Event)
	TrackTransaction(fill.Event)
	AddEquityPoint(time.Time, int64, decimal.Decimal)
	TotalEquityPoints() int
	FinalEquity() decimal.Decimal
	TotalReturn() decimal.Decimal
	MaxDrawdown() decimal.Decimal
	PrintResult()
	Reset()
}
