package config

import (
	"errors"

	"github.com/quantfoundry/backtester/database"
)

// Data source identifiers
const (
	DataSourceCSV      = "csv"
	DataSourceDatabase = "database"
)

var (
	// ErrNoStrategy returned when no strategy name is configured
	ErrNoStrategy = errors.New("no strategy provided")
	// ErrNoSymbols returned when no symbols are configured
	ErrNoSymbols = errors.New("no symbols provided")
	// ErrBadDataSource returned for an unrecognised data source value
	ErrBadDataSource = errors.New("unrecognised data source")

	errInvalidInitialCapital = errors.New("initial capital must be greater than zero")
	errInvalidCommission     = errors.New("commission rate must be between 0 and 1")
	errInvalidFillCost       = errors.New("fill cost cannot be negative")
	errInvalidContractValue  = errors.New("contract value must be greater than zero")
	errInvalidOrderSize      = errors.New("order size must be greater than zero")
	errInvalidStartDate      = errors.New("start date must be formatted as 2006-01-02")
	errNoCSVFiles            = errors.New("csv data source requires csv-files entries")
)

// Config holds a full backtest run definition
type Config struct {
	Strategy          string            `mapstructure:"strategy"`
	Symbols           []string          `mapstructure:"symbols"`
	InitialCapital    float64           `mapstructure:"initial-capital"`
	Commission        float64           `mapstructure:"commission"`
	FillCost          float64           `mapstructure:"fill-cost"`
	OrderSize         int64             `mapstructure:"order-size"`
	ContractValue     float64           `mapstructure:"contract-value"`
	StartDate         string            `mapstructure:"start-date"`
	MaxTradingPeriods int64             `mapstructure:"max-trading-periods"`
	DataSource        string            `mapstructure:"data-source"`
	CSVFiles          map[string]string `mapstructure:"csv-files"`
	Database          database.Config   `mapstructure:"database"`
}
