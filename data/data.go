package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Setup creates the underlying stream map
func (b *Base) Setup() {
	if b.streams == nil {
		b.streams = make(map[string][]Bar)
	}
}

// AppendStream appends bars onto a symbol's series. Streams are append-only,
// past bars are never rewritten or removed
func (b *Base) AppendStream(symbol string, bars ...Bar) {
	if b.streams == nil {
		b.Setup()
	}
	if _, ok := b.streams[symbol]; !ok {
		b.symbols = append(b.symbols, symbol)
		sort.Strings(b.symbols)
	}
	b.streams[symbol] = append(b.streams[symbol], bars...)
}

// SortStream sorts each symbol's series by timestamp
func (b *Base) SortStream() {
	for s := range b.streams {
		stream := b.streams[s]
		sort.Slice(stream, func(i, j int) bool {
			return stream[i].Time.Before(stream[j].Time)
		})
	}
}

// Next advances the cursor by exactly one time step across all symbols in
// lock-step. When any symbol's series is exhausted, no further data is
// revealed and the continue flag is flipped
func (b *Base) Next() bool {
	if b.finished {
		return false
	}
	for _, s := range b.symbols {
		if b.offset >= int64(len(b.streams[s])) {
			b.finished = true
			return false
		}
	}
	if len(b.symbols) == 0 {
		b.finished = true
		return false
	}
	b.offset++
	return true
}

// Continue reports whether the backtest has more data to reveal
func (b *Base) Continue() bool {
	return !b.finished
}

// Offset returns the number of bars revealed so far
func (b *Base) Offset() int64 {
	return b.offset
}

// Symbols returns all registered symbols
func (b *Base) Symbols() []string {
	out := make([]string, len(b.symbols))
	copy(out, b.symbols)
	return out
}

// Reset rewinds the handler to the start of the backtest
func (b *Base) Reset() {
	b.offset = 0
	b.finished = false
}

// GetLatestBar returns the most recent visible bar for symbol, nil if the
// cursor has not yet advanced
func (b *Base) GetLatestBar(symbol string) (*Bar, error) {
	visible, err := b.visible(symbol)
	if err != nil {
		return nil, err
	}
	if len(visible) == 0 {
		return nil, nil
	}
	latest := visible[len(visible)-1]
	return &latest, nil
}

// GetLatestBars returns up to n of the most recent visible bars in
// chronological order, clamped to what is available
func (b *Base) GetLatestBars(symbol string, n int) ([]Bar, error) {
	visible, err := b.visible(symbol)
	if err != nil {
		return nil, err
	}
	if n > len(visible) {
		n = len(visible)
	}
	if n <= 0 {
		return nil, nil
	}
	out := make([]Bar, n)
	copy(out, visible[len(visible)-n:])
	return out, nil
}

// GetLatestBarTime returns the timestamp of the most recent visible bar
func (b *Base) GetLatestBarTime(symbol string) (time.Time, error) {
	latest, err := b.GetLatestBar(symbol)
	if err != nil {
		return time.Time{}, err
	}
	if latest == nil {
		return time.Time{}, fmt.Errorf("%w for %v", ErrNoBarData, symbol)
	}
	return latest.Time, nil
}

// GetLatestBarValue returns a single component of the most recent visible bar
func (b *Base) GetLatestBarValue(symbol string, f Field) (decimal.Decimal, error) {
	latest, err := b.GetLatestBar(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if latest == nil {
		return decimal.Zero, fmt.Errorf("%w for %v", ErrNoBarData, symbol)
	}
	return latest.Value(f)
}

// GetLatestBarValues returns a component across up to n of the most recent
// visible bars in chronological order
func (b *Base) GetLatestBarValues(symbol string, f Field, n int) ([]decimal.Decimal, error) {
	bars, err := b.GetLatestBars(symbol, n)
	if err != nil {
		return nil, err
	}
	out := make([]decimal.Decimal, len(bars))
	for i := range bars {
		out[i], err = bars[i].Value(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (b *Base) visible(symbol string) ([]Bar, error) {
	stream, ok := b.streams[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
	cut := b.offset
	if cut > int64(len(stream)) {
		cut = int64(len(stream))
	}
	return stream[:cut], nil
}
