package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	c := Default()
	c.Strategy = "buyandhold"
	c.Symbols = []string{"AAPL"}
	c.CSVFiles = map[string]string{"AAPL": "testdata/AAPL.csv"}
	return c
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.Strategy = ""
	assert.ErrorIs(t, c.Validate(), ErrNoStrategy)

	c = validConfig()
	c.Symbols = nil
	assert.ErrorIs(t, c.Validate(), ErrNoSymbols)

	c = validConfig()
	c.InitialCapital = 0
	assert.ErrorIs(t, c.Validate(), errInvalidInitialCapital)

	c = validConfig()
	c.Commission = 1.5
	assert.ErrorIs(t, c.Validate(), errInvalidCommission)

	c = validConfig()
	c.FillCost = -1
	assert.ErrorIs(t, c.Validate(), errInvalidFillCost)

	c = validConfig()
	c.ContractValue = 0
	assert.ErrorIs(t, c.Validate(), errInvalidContractValue)

	c = validConfig()
	c.OrderSize = 0
	assert.ErrorIs(t, c.Validate(), errInvalidOrderSize)

	c = validConfig()
	c.StartDate = "01/02/2000"
	assert.ErrorIs(t, c.Validate(), errInvalidStartDate)

	c = validConfig()
	c.DataSource = "carrier-pigeon"
	assert.ErrorIs(t, c.Validate(), ErrBadDataSource)

	c = validConfig()
	c.CSVFiles = map[string]string{"MSFT": "testdata/MSFT.csv"}
	assert.ErrorIs(t, c.Validate(), errNoCSVFiles)
}

func TestStartTime(t *testing.T) {
	t.Parallel()
	c := validConfig()
	c.StartDate = "2019-06-01"
	got, err := c.StartTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestReadConfigFromFile(t *testing.T) {
	contents := `strategy: rsi
symbols:
  - AAPL
  - MSFT
initial-capital: 50000
commission: 0.002
data-source: csv
csv-files:
  AAPL: testdata/AAPL.csv
  MSFT: testdata/MSFT.csv
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := ReadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rsi", cfg.Strategy)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Symbols)
	assert.Equal(t, 50000.0, cfg.InitialCapital)
	assert.Equal(t, 0.002, cfg.Commission)
	// defaults fill the fields the file omits
	assert.Equal(t, 0.87, cfg.FillCost)
	assert.Equal(t, int64(1), cfg.OrderSize)
	assert.Equal(t, "2000-01-01", cfg.StartDate)
}

func TestReadConfigFromFileMissing(t *testing.T) {
	_, err := ReadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: rsi\n"), 0o644))
	_, err := ReadConfigFromFile(path)
	assert.ErrorIs(t, err, ErrNoSymbols)
}
