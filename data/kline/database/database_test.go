package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/data/kline"
	dbconn "github.com/quantfoundry/backtester/database"
	sqlite "github.com/quantfoundry/backtester/database/drivers/sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, *dbconn.Config) {
	t.Helper()
	cfg := &dbconn.Config{
		Driver:   dbconn.DBSQLite3,
		Database: ":memory:",
	}
	db, err := sqlite.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE candles (
		symbol TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		open REAL, high REAL, low REAL, close REAL, adj_close REAL, volume REAL)`)
	require.NoError(t, err)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range []float64{100, 105, 110} {
		_, err = db.Exec(`INSERT INTO candles VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			"ES", start.AddDate(0, 0, i).Format(time.RFC3339), c, c+1, c-1, c, c, 1000)
		require.NoError(t, err)
	}
	return db, cfg
}

func TestLoadData(t *testing.T) {
	t.Parallel()
	db, cfg := setupTestDB(t)
	start := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	h, err := LoadData(db, cfg, []string{"ES"}, start)
	require.NoError(t, err)

	require.True(t, h.Next())
	v, err := h.GetLatestBarValue("ES", data.FieldClose)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(105)), "bars before the start date must be filtered out")

	require.True(t, h.Next())
	assert.False(t, h.Next())
}

func TestLoadDataNoSymbols(t *testing.T) {
	t.Parallel()
	_, err := LoadData(nil, nil, nil, time.Time{})
	assert.ErrorIs(t, err, kline.ErrNoBars)
}

func TestLoadDataUnknownSymbol(t *testing.T) {
	t.Parallel()
	db, cfg := setupTestDB(t)
	_, err := LoadData(db, cfg, []string{"NQ"}, time.Time{})
	assert.ErrorIs(t, err, kline.ErrNoBars)
}
