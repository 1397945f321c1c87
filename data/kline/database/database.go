// Package database loads bar data for the backtester from a relational store
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/data/kline"
	dbconn "github.com/quantfoundry/backtester/database"
	"github.com/quantfoundry/backtester/database/repository/candle"
	"github.com/shopspring/decimal"
)

// LoadData queries the bar store for every symbol and returns a data handler
// over the resulting series, filtered by the start date
func LoadData(db *sql.DB, cfg *dbconn.Config, symbols []string, startDate time.Time) (*data.Base, error) {
	if len(symbols) == 0 {
		return nil, kline.ErrNoBars
	}
	streams := make(map[string][]data.Bar, len(symbols))
	for _, symbol := range symbols {
		candles, err := candle.Series(db, cfg, symbol, startDate)
		if err != nil {
			return nil, fmt.Errorf("loading %v: %w", symbol, err)
		}
		if len(candles) == 0 {
			return nil, fmt.Errorf("%w for %v", kline.ErrNoBars, symbol)
		}
		bars := make([]data.Bar, len(candles))
		for i := range candles {
			bars[i] = data.Bar{
				Time:     candles[i].Timestamp,
				Open:     decimal.NewFromFloat(candles[i].Open),
				High:     decimal.NewFromFloat(candles[i].High),
				Low:      decimal.NewFromFloat(candles[i].Low),
				Close:    decimal.NewFromFloat(candles[i].Close),
				AdjClose: decimal.NewFromFloat(candles[i].AdjClose),
				Volume:   decimal.NewFromFloat(candles[i].Volume),
			}
		}
		streams[symbol] = bars
	}
	return kline.NewFromBars(streams)
}
