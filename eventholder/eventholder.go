package eventholder

import (
	"github.com/quantfoundry/backtester/common"
)

// Reset returns the holder to its default state
func (h *Holder) Reset() {
	if h == nil {
		return
	}
	h.queue = nil
}

// AppendEvent appends an event to the tail of the queue
func (h *Holder) AppendEvent(e common.Event) {
	if e == nil {
		return
	}
	h.queue = append(h.queue, e)
}

// NextEvent removes and returns the head of the queue. Events raised while
// processing an earlier event are dispatched only after everything queued
// before them, preserving causal order
func (h *Holder) NextEvent() (common.Event, error) {
	if len(h.queue) == 0 {
		return nil, ErrEmptyQueue
	}
	e := h.queue[0]
	h.queue = h.queue[1:]
	return e, nil
}

// IsEmpty reports whether any events remain queued
func (h *Holder) IsEmpty() bool {
	return len(h.queue) == 0
}
