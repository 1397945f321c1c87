package sqlite

import (
	"database/sql"

	// import sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/quantfoundry/backtester/database"
)

// Connect opens a connection to the sqlite database file named in the config
func Connect(cfg *database.Config) (*sql.DB, error) {
	if cfg == nil || cfg.Database == "" {
		return nil, database.ErrNoDatabaseProvided
	}
	db, err := sql.Open("sqlite3", cfg.Database)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
