package eventholder

import (
	"testing"

	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/quantfoundry/backtester/eventtypes/market"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEventEmpty(t *testing.T) {
	t.Parallel()
	h := &Holder{}
	e, err := h.NextEvent()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	assert.Nil(t, e)
	assert.True(t, h.IsEmpty())
}

func TestFIFOOrdering(t *testing.T) {
	t.Parallel()
	h := &Holder{}
	events := []common.Event{
		&market.Market{Base: event.Base{Offset: 1}},
		&signal.Signal{Base: event.Base{Offset: 2}},
		&order.Order{Base: event.Base{Offset: 3}},
		&market.Market{Base: event.Base{Offset: 4}},
	}
	for i := range events {
		h.AppendEvent(events[i])
	}
	assert.False(t, h.IsEmpty())
	for i := range events {
		e, err := h.NextEvent()
		require.NoError(t, err)
		assert.Equal(t, events[i], e)
	}
	assert.True(t, h.IsEmpty())
}

func TestAppendWhileDraining(t *testing.T) {
	t.Parallel()
	// events raised during processing must not jump ahead of those already queued
	h := &Holder{}
	first := &signal.Signal{Base: event.Base{Offset: 1}}
	second := &signal.Signal{Base: event.Base{Offset: 2}}
	h.AppendEvent(first)
	h.AppendEvent(second)

	e, err := h.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, first, e)

	generated := &order.Order{Base: event.Base{Offset: 3}}
	h.AppendEvent(generated)

	e, err = h.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, second, e)

	e, err = h.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, generated, e)
}

func TestAppendNil(t *testing.T) {
	t.Parallel()
	h := &Holder{}
	h.AppendEvent(nil)
	assert.True(t, h.IsEmpty())
}

func TestReset(t *testing.T) {
	t.Parallel()
	h := &Holder{}
	h.AppendEvent(&market.Market{})
	h.Reset()
	assert.True(t, h.IsEmpty())

	var nilHolder *Holder
	nilHolder.Reset()
}
