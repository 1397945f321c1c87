package event

import (
	"fmt"
	"time"
)

// GetOffset returns the offset of the event at the time it was generated
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the offset
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// GetTime returns the time the event occurred at
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetSymbol returns the symbol the event relates to
func (b *Base) GetSymbol() string {
	return b.Symbol
}

// GetReason returns the reason an event was generated
func (b *Base) GetReason() string {
	return b.Reason
}

// AppendReason appends a reason to help explain a decision
// made while processing an event
func (b *Base) AppendReason(y string) {
	if b.Reason == "" {
		b.Reason = y
		return
	}
	b.Reason = b.Reason + ". " + y
}

// AppendReasonf appends a formatted reason
func (b *Base) AppendReasonf(y string, addons ...any) {
	b.AppendReason(fmt.Sprintf(y, addons...))
}
