package event

import (
	"time"
)

// Base is the underlying event across all event types
// it is shared across all events to ensure that handlers can
// always determine where and when an event originated
type Base struct {
	Offset int64     `json:"offset"`
	Symbol string    `json:"symbol"`
	Time   time.Time `json:"timestamp"`
	Reason string    `json:"reason"`
}
