package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStore_NoneBackend(t *testing.T) {
	store, err := NewCacheStore(resultTable, schema.NoneBackend, "")
	require.NoError(t, err)

	_, _, _, err = store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, store.Set("key", []byte("value"), 1, 1))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestCacheStore_SQLite(t *testing.T) {
	store, err := NewCacheStore(resultTable, schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, _, _, err = store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	now := time.Now().Unix()
	require.NoError(t, store.Set("fp-1", []byte(`{"a":1}`), 2, now-60))
	require.NoError(t, store.Set("fp-2", []byte(`{"b":2}`), 2, now))

	value, version, ts, err := store.Get("fp-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, now-60, ts)

	// Upsert replaces the previous value
	require.NoError(t, store.Set("fp-1", []byte(`{"a":3}`), 3, now))
	value, version, _, err = store.Get("fp-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":3}`), value)
	assert.Equal(t, 3, version)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, now, status.LastEntryTime.Unix())
	assert.GreaterOrEqual(t, status.TableSizeBytes, int64(0))
}

func TestCacheStore_InvalidInputs(t *testing.T) {
	_, err := NewCacheStore("bad; DROP TABLE x", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)

	_, err = NewCacheStore(resultTable, schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)
}

func TestCacheStore_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(resultTable, schema.SQLiteBackend, path)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("v"), 1, 1))
	require.NoError(t, store.Close())

	reopened, err := NewCacheStore(resultTable, schema.SQLiteBackend, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	value, _, _, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, ClearCache(schema.SQLiteBackend, filepath.Join(t.TempDir(), "other.db"), ""))
}

func TestDBUtils(t *testing.T) {
	assert.NoError(t, validateTableName("fuzzyrank_result_cache"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("1table"))
	assert.Error(t, validateTableName("a-b"))

	assert.Equal(t, "`t`", quoteTableName("t", schema.MySQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.PostgreSQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.SQLiteBackend))

	assert.Equal(t, "?, ?, ?", placeholders(schema.SQLiteBackend, 3))
	assert.Equal(t, "$1, $2", placeholders(schema.PostgreSQLBackend, 2))

	ts := time.Date(2024, 5, 1, 10, 0, 0, 123, time.UTC)
	formatted, ok := formatTime(ts, schema.SQLiteBackend).(string)
	require.True(t, ok)
	parsed, err := parseTime(formatted)
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
	assert.Equal(t, ts, formatTime(ts, schema.MySQLBackend))
}

func TestClearCacheErrors(t *testing.T) {
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
	assert.Error(t, ClearCache(schema.DatabaseBackend("redis"), "", ""))
}
