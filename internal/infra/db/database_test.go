package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/config"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
)

func TestNewConnectionSQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck())

	for _, m := range model.All() {
		assert.True(t, database.DB().Migrator().HasTable(m), "missing table for %T", m)
	}
}

func TestNewConnectionUnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
