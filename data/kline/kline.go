// Package kline constructs data handlers from bar series, with subpackages
// loading those series from CSV files or a relational store
package kline

import (
	"errors"

	"github.com/quantfoundry/backtester/data"
)

// ErrNoBars is returned when a handler is requested over an empty series
var ErrNoBars = errors.New("no bars to load")

// NewFromBars creates a data handler from in-memory bar series keyed by
// symbol. Series are sorted by timestamp before use
func NewFromBars(streams map[string][]data.Bar) (*data.Base, error) {
	if len(streams) == 0 {
		return nil, ErrNoBars
	}
	b := &data.Base{}
	b.Setup()
	for symbol, bars := range streams {
		if len(bars) == 0 {
			return nil, ErrNoBars
		}
		b.AppendStream(symbol, bars...)
	}
	b.SortStream()
	return b, nil
}
