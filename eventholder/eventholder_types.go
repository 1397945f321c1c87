package eventholder

import (
	"errors"

	"github.com/quantfoundry/backtester/common"
)

// ErrEmptyQueue is returned when the next event is requested and none are
// queued. The dispatch loop drains until this is returned, anywhere else it
// indicates broken dispatch discipline
var ErrEmptyQueue = errors.New("event queue is empty")

// Holder contains the event queue for backtester processing. It must be
// constructed per run and passed to each component that raises events,
// sharing one across runs breaks determinism
type Holder struct {
	queue []common.Event
}

// EventHolder interface details what is expected of an event holder to perform
type EventHolder interface {
	Reset()
	AppendEvent(common.Event)
	NextEvent() (common.Event, error)
	IsEmpty() bool
}
