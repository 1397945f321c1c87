package postgres

import (
	"testing"

	"github.com/quantfoundry/backtester/database"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	t.Parallel()
	cfg := &database.Config{
		Driver:   database.DBPostgreSQL,
		Host:     "localhost",
		Port:     5432,
		Username: "bt",
		Password: "hunter2",
		Database: "bars",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=bt password=hunter2 dbname=bars sslmode=disable",
		DSN(cfg))
}

func TestConnectNoDatabase(t *testing.T) {
	t.Parallel()
	_, err := Connect(nil)
	assert.ErrorIs(t, err, database.ErrNoDatabaseProvided)
	_, err = Connect(&database.Config{})
	assert.ErrorIs(t, err, database.ErrNoDatabaseProvided)
}
