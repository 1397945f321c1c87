package candle

import (
	"errors"
	"time"
)

// ErrInvalidInput is returned when required query parameters are missing
var ErrInvalidInput = errors.New("invalid candle query input")

// Candle is a single saved OHLCV entry
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	AdjClose  float64
	Volume    float64
}
