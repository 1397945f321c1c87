// Package database holds connection configuration and driver selection for
// the historical bar store
package database

import (
	"errors"
)

const (
	// DBSQLite3 is the sqlite3 driver name
	DBSQLite3 = "sqlite3"
	// DBPostgreSQL is the postgres driver name
	DBPostgreSQL = "postgres"
)

var (
	// ErrNoDatabaseProvided is returned when no database name or path is configured
	ErrNoDatabaseProvided = errors.New("no database provided")
	// ErrUnsupportedDriver is returned for a driver outside sqlite3/postgres
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Config holds connection details for the bar store
type Config struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     uint16 `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"sslmode"`
}

// Validate checks the config is usable for its driver
func (c *Config) Validate() error {
	switch c.Driver {
	case DBSQLite3, DBPostgreSQL:
	default:
		return ErrUnsupportedDriver
	}
	if c.Database == "" {
		return ErrNoDatabaseProvided
	}
	return nil
}
