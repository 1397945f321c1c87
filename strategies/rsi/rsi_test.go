package rsi

import (
	"testing"
	"time"

	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/data/kline"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T, closes ...float64) *data.Base {
	t.Helper()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]data.Bar, len(closes))
	for i := range closes {
		bars[i] = data.Bar{Time: start.AddDate(0, 0, i), Close: decimal.NewFromFloat(closes[i])}
	}
	h, err := kline.NewFromBars(map[string][]data.Bar{"ES": bars})
	require.NoError(t, err)
	return h
}

func TestOnMarketNotEnoughData(t *testing.T) {
	t.Parallel()
	h := setupHandler(t, 100, 101)
	require.True(t, h.Next())
	s := &Strategy{Period: 3}
	sig, err := s.OnMarket(h)
	require.NoError(t, err)
	assert.Nil(t, sig)
}

func TestOnMarketOverbought(t *testing.T) {
	t.Parallel()
	h := setupHandler(t, 100, 102, 104, 106, 108)
	for h.Next() {
	}
	s := &Strategy{Period: 3}
	sig, err := s.OnMarket(h)
	require.NoError(t, err)
	require.NotNil(t, sig)
	// a strictly rising series pins RSI at 100
	assert.Equal(t, common.Short, sig.GetDirection())
}

func TestOnMarketOversold(t *testing.T) {
	t.Parallel()
	h := setupHandler(t, 108, 106, 104, 102, 100)
	for h.Next() {
	}
	s := &Strategy{Period: 3}
	sig, err := s.OnMarket(h)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, common.Long, sig.GetDirection())
}

func TestOnMarketNilData(t *testing.T) {
	t.Parallel()
	s := &Strategy{}
	_, err := s.OnMarket(nil)
	assert.ErrorIs(t, err, common.ErrNilArguments)
}
