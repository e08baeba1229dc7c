package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrationsCreatesKVStore(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nested", "ewdash.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())

	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_store'`).Scan(&name))
	require.Equal(t, "kv_store", name)
}

func TestNowIsUTCSeconds(t *testing.T) {
	n := Now()
	require.Equal(t, "UTC", n.Location().String())
	require.Zero(t, n.Nanosecond())
}
