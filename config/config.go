package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const startDateFormat = "2006-01-02"

// Default returns a config pre-filled with sensible run defaults
func Default() *Config {
	return &Config{
		InitialCapital:    100000,
		Commission:        0,
		FillCost:          0.87,
		OrderSize:         1,
		ContractValue:     1,
		StartDate:         "2000-01-01",
		MaxTradingPeriods: 0,
		DataSource:        DataSourceCSV,
	}
}

// ReadConfigFromFile loads a run definition from the file at path.
// Values can be overridden through BACKTESTER_ prefixed environment
// variables, and database credentials may come from a .env file.
func ReadConfigFromFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("BACKTESTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("initial-capital", d.InitialCapital)
	v.SetDefault("commission", d.Commission)
	v.SetDefault("fill-cost", d.FillCost)
	v.SetDefault("order-size", d.OrderSize)
	v.SetDefault("contract-value", d.ContractValue)
	v.SetDefault("start-date", d.StartDate)
	v.SetDefault("max-trading-periods", d.MaxTradingPeriods)
	v.SetDefault("data-source", d.DataSource)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the loaded run definition is complete and coherent
func (c *Config) Validate() error {
	if c.Strategy == "" {
		return ErrNoStrategy
	}
	if len(c.Symbols) == 0 {
		return ErrNoSymbols
	}
	if c.InitialCapital <= 0 {
		return errInvalidInitialCapital
	}
	if c.Commission < 0 || c.Commission > 1 {
		return errInvalidCommission
	}
	if c.FillCost < 0 {
		return errInvalidFillCost
	}
	if c.ContractValue <= 0 {
		return errInvalidContractValue
	}
	if c.OrderSize <= 0 {
		return errInvalidOrderSize
	}
	if _, err := c.StartTime(); err != nil {
		return err
	}
	switch c.DataSource {
	case DataSourceCSV:
		if len(c.CSVFiles) == 0 {
			return errNoCSVFiles
		}
		for _, s := range c.Symbols {
			if _, ok := c.CSVFiles[s]; !ok {
				return fmt.Errorf("%w: no file for symbol %q", errNoCSVFiles, s)
			}
		}
	case DataSourceDatabase:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrBadDataSource, c.DataSource)
	}
	return nil
}

// StartTime parses the configured start date
func (c *Config) StartTime() (time.Time, error) {
	t, err := time.Parse(startDateFormat, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidStartDate, c.StartDate)
	}
	return t, nil
}
