package data

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownSymbol is returned when a symbol was never registered with the handler
	ErrUnknownSymbol = errors.New("symbol not registered with data handler")
	// ErrNoBarData is returned when a value is requested before any bar is visible
	ErrNoBarData = errors.New("no bar data available")
	// ErrInvalidField is returned when a bar field selector is unrecognised
	ErrInvalidField = errors.New("invalid bar field")
)

// Field selects a single component of a bar
type Field string

const (
	// FieldOpen selects the opening price
	FieldOpen Field = "open"
	// FieldHigh selects the high price
	FieldHigh Field = "high"
	// FieldLow selects the low price
	FieldLow Field = "low"
	// FieldClose selects the closing price
	FieldClose Field = "close"
	// FieldAdjClose selects the adjusted closing price
	FieldAdjClose Field = "adj_close"
	// FieldVolume selects the traded volume
	FieldVolume Field = "volume"
)

// Bar is a single OHLCV entry for a symbol, immutable once appended to a stream
type Bar struct {
	Time     time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	AdjClose decimal.Decimal
	Volume   decimal.Decimal
}

// Value returns the bar component selected by f
func (b *Bar) Value(f Field) (decimal.Decimal, error) {
	switch f {
	case FieldOpen:
		return b.Open, nil
	case FieldHigh:
		return b.High, nil
	case FieldLow:
		return b.Low, nil
	case FieldClose:
		return b.Close, nil
	case FieldAdjClose:
		return b.AdjClose, nil
	case FieldVolume:
		return b.Volume, nil
	default:
		return decimal.Zero, ErrInvalidField
	}
}

// Handler is the contract the engine consumes market data through. Nothing
// beyond the current simulated time may ever be revealed by any method
type Handler interface {
	GetLatestBar(symbol string) (*Bar, error)
	GetLatestBars(symbol string, n int) ([]Bar, error)
	GetLatestBarTime(symbol string) (time.Time, error)
	GetLatestBarValue(symbol string, f Field) (decimal.Decimal, error)
	GetLatestBarValues(symbol string, f Field, n int) ([]decimal.Decimal, error)
	Next() bool
	Continue() bool
	Offset() int64
	Symbols() []string
	Reset()
}

// Base is the stream backed implementation of Handler. Full series are held
// privately and only the slice behind the offset cursor is ever exposed
type Base struct {
	streams  map[string][]Bar
	symbols  []string
	offset   int64
	finished bool
}
