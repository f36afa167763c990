//go:build unit
// +build unit

package persistence

import (
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_Sqlite(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{
		Type:         config.SqliteDbType,
		DSN:          filepath.Join(t.TempDir(), "conn.db"),
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrations must be repeatable")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
	assert.True(t, db.Migrator().HasIndex("images", defaultImageIndex))
}

func TestNewDBConnection_UnsupportedType(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle"})
	assert.Error(t, err)
}

func TestMySQLDSNHelpers(t *testing.T) {
	assert.True(t, mysqlDSNWithoutDatabase("root:root@tcp(localhost:3306)/"))
	assert.True(t, mysqlDSNWithoutDatabase("root:root@tcp(localhost:3306)/?charset=utf8mb4"))
	assert.False(t, mysqlDSNWithoutDatabase("root:root@tcp(localhost:3306)/catalog"))

	assert.Equal(t, "root:root@tcp(localhost:3306)/catalog?charset=utf8mb4",
		mysqlDSNForDatabase("root:root@tcp(localhost:3306)/?charset=utf8mb4", "catalog"))

	assert.Equal(t, "u@tcp(h)/db?parseTime=true", withParseTime("u@tcp(h)/db"))
	assert.Equal(t, "u@tcp(h)/db?charset=utf8mb4&parseTime=true", withParseTime("u@tcp(h)/db?charset=utf8mb4"))
	assert.Equal(t, "u@tcp(h)/db?parseTime=True", withParseTime("u@tcp(h)/db?parseTime=True"))
}
