package common

import (
	"errors"
	"time"
)

// Direction is the stance a signal takes on a symbol
type Direction string

const (
	// Long signals that a rising price is expected
	Long Direction = "LONG"
	// Short signals that a falling price is expected
	Short Direction = "SHORT"
	// DoNothing is an explicit signal for the backtester to not perform an action
	// based upon indicator results
	DoNothing Direction = "DO NOTHING"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were passed in
	// when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it shouldn't have
	ErrNilEvent = errors.New("nil event received")
)

// Event is the minimum requirement for anything that travels through the event queue
type Event interface {
	GetOffset() int64
	SetOffset(int64)
	GetTime() time.Time
	GetSymbol() string
	GetReason() string
	AppendReason(string)
}

// Directioner dictates the stance of a signal
type Directioner interface {
	SetDirection(Direction)
	GetDirection() Direction
}
