package postgres

import (
	"database/sql"
	"fmt"
	"time"

	// import postgres driver
	_ "github.com/lib/pq"

	"github.com/quantfoundry/backtester/database"
)

// Connect establishes a connection to the configured postgres database
func Connect(cfg *database.Config) (*sql.DB, error) {
	if cfg == nil || cfg.Database == "" {
		return nil, database.ErrNoDatabaseProvided
	}
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// DSN renders the config as a lib/pq connection string
func DSN(cfg *database.Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Database,
		cfg.SSLMode)
}
