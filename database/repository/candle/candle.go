// Package candle queries saved OHLCV series from the bar store
package candle

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/quantfoundry/backtester/database"
)

// Series returns all candles for a symbol at or after start in chronological
// order. Timestamps are stored as RFC3339 text under sqlite and native
// timestamps under postgres
func Series(db *sql.DB, cfg *database.Config, symbol string, start time.Time) ([]Candle, error) {
	if db == nil || cfg == nil || symbol == "" {
		return nil, ErrInvalidInput
	}
	query := fmt.Sprintf(`SELECT timestamp, open, high, low, close, adj_close, volume
		FROM candles
		WHERE symbol = %s AND timestamp >= %s
		ORDER BY timestamp ASC`,
		cfg.Placeholder(1), cfg.Placeholder(2))

	var rows *sql.Rows
	var err error
	if cfg.Driver == database.DBSQLite3 {
		rows, err = db.Query(query, symbol, start.UTC().Format(time.RFC3339))
	} else {
		rows, err = db.Query(query, symbol, start.UTC())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candle
	for rows.Next() {
		var c Candle
		if cfg.Driver == database.DBSQLite3 {
			var ts string
			if err = rows.Scan(&ts, &c.Open, &c.High, &c.Low, &c.Close, &c.AdjClose, &c.Volume); err != nil {
				return nil, err
			}
			c.Timestamp, err = time.Parse(time.RFC3339, ts)
			if err != nil {
				return nil, err
			}
		} else {
			if err = rows.Scan(&c.Timestamp, &c.Open, &c.High, &c.Low, &c.Close, &c.AdjClose, &c.Volume); err != nil {
				return nil, err
			}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
