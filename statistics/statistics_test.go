package statistics

import (
	"testing"
	"time"

	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/market"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTrackEvent(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	s.TrackEvent(&market.Market{})
	s.TrackEvent(&market.Market{})
	s.TrackEvent(&signal.Signal{})
	s.TrackEvent(&order.Order{})
	s.TrackEvent(&fill.Fill{})
	assert.Equal(t, int64(2), s.marketEvents)
	assert.Equal(t, int64(1), s.signalEvents)
	assert.Equal(t, int64(1), s.orderEvents)
	assert.Equal(t, int64(1), s.fillEvents)
}

func TestTrackTransaction(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	s.TrackTransaction(nil)
	assert.Empty(t, s.transactions)
	s.TrackTransaction(&fill.Fill{Base: event.Base{Symbol: "AAPL"}, Amount: 5})
	assert.Len(t, s.transactions, 1)
}

func TestTotalReturn(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	s.SetInitialCapital(decimal.NewFromInt(100000))
	assert.True(t, s.TotalReturn().IsZero())

	s.AddEquityPoint(time.Now(), 1, decimal.NewFromInt(105000))
	assert.True(t, s.TotalReturn().Equal(decimal.NewFromInt(5)))
	assert.True(t, s.FinalEquity().Equal(decimal.NewFromInt(105000)))
	assert.Equal(t, 1, s.TotalEquityPoints())
}

func TestTotalReturnZeroCapital(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	s.AddEquityPoint(time.Now(), 1, decimal.NewFromInt(50))
	assert.True(t, s.TotalReturn().IsZero())
}

func TestMaxDrawdown(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	assert.True(t, s.MaxDrawdown().IsZero())

	tn := time.Now()
	s.AddEquityPoint(tn, 1, decimal.NewFromInt(100))
	s.AddEquityPoint(tn, 2, decimal.NewFromInt(120))
	s.AddEquityPoint(tn, 3, decimal.NewFromInt(90))
	s.AddEquityPoint(tn, 4, decimal.NewFromInt(130))
	// worst decline is 120 -> 90, a 25% draw against the 120 peak
	assert.True(t, s.MaxDrawdown().Equal(decimal.NewFromInt(25)))
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	s.SetStrategyName("buyandhold")
	s.SetInitialCapital(decimal.NewFromInt(100))
	s.AddEquityPoint(time.Now(), 1, decimal.NewFromInt(110))
	s.TrackEvent(&market.Market{})
	s.Reset()
	assert.Empty(t, s.equity)
	assert.Zero(t, s.marketEvents)
	assert.Empty(t, s.strategyName)
}
