package smacross

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

func TestOnMarketCrossAbove(t *testing.T) {
	t.Parallel()
	h := setupHandler(t, 10, 10, 10, 30)
	s := &Strategy{FastPeriod: 2, SlowPeriod: 3}

	// prime on the first full window, flat averages mean no stance yet
	require.True(t, h.Next())
	require.True(t, h.Next())
	require.True(t, h.Next())
	sig, err := s.OnMarket(h)
	require.NoError(t, err)
	assert.Nil(t, sig)

	// a strong up bar pulls the fast average above the slow one
	require.True(t, h.Next())
	sig, err = s.OnMarket(h)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, common.Long, sig.GetDirection())

	// no new cross, no new signal
	sig, err = s.OnMarket(h)
	require.NoError(t, err)
	assert.Nil(t, sig)
}

func TestOnMarketCrossBelow(t *testing.T) {
	t.Parallel()
	h := setupHandler(t, 10, 30, 30, 5)
	s := &Strategy{FastPeriod: 2, SlowPeriod: 3}

	// primes with the fast average already above the slow one
	require.True(t, h.Next())
	require.True(t, h.Next())
	require.True(t, h.Next())
	_, err := s.OnMarket(h)
	require.NoError(t, err)

	require.True(t, h.Next())
	sig, err := s.OnMarket(h)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, common.Short, sig.GetDirection())
}

func TestOnMarketNotEnoughData(t *testing.T) {
	t.Parallel()
	h := setupHandler(t, 10, 20)
	require.True(t, h.Next())
	s := &Strategy{FastPeriod: 2, SlowPeriod: 3}
	sig, err := s.OnMarket(h)
	require.NoError(t, err)
	assert.Nil(t, sig)
}

func TestOnMarketNilData(t *testing.T) {
	t.Parallel()
	s := &Strategy{}
	_, err := s.OnMarket(nil)
	assert.ErrorIs(t, err, common.ErrNilArguments)
}
