//go:build database

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/fuzzyrank/fuzzyrank/core"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/iocache"
	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startMySQL starts a MySQL container and returns its connection string.
func startMySQL(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "fuzzyrank",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mysqlC.Terminate(ctx) })

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	// parseTime is required to scan DATETIME columns into time.Time
	return fmt.Sprintf("root:secret123@tcp(%s:%s)/fuzzyrank?parseTime=true", host, port.Port())
}

// startPostgres starts a PostgreSQL container and returns its connection string.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
}

var backends = []struct {
	name    string
	backend schema.DatabaseBackend
	start   func(t *testing.T) string
}{
	{"MySQL", schema.MySQLBackend, startMySQL},
	{"PostgreSQL", schema.PostgreSQLBackend, startPostgres},
}

// TestCLIWithDatabases runs the fuzzyrank CLI against each SQL backend.
func TestCLIWithDatabases(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			connStr := b.start(t)
			home := t.TempDir()

			t.Setenv("FUZZYRANK_CACHE_BACKEND", string(b.backend))
			t.Setenv("FUZZYRANK_CACHE_DB_CONNECT", connStr)
			t.Setenv("FUZZYRANK_HISTORY_BACKEND", string(b.backend))
			t.Setenv("FUZZYRANK_HISTORY_DB_CONNECT", connStr)

			_, err := runCommand(t, home, "cache", "clear")
			require.NoError(t, err)
			_, err = runCommand(t, home, "history", "clear")
			require.NoError(t, err)

			// The second run is served from the cache
			for i, wantHit := range []bool{false, true} {
				out, err := runCommand(t, home, "rank", "testdata/vendors.yaml", "--output", "json")
				require.NoError(t, err, "run %d", i+1)
				var doc struct {
					CacheHit bool `json:"cache_hit"`
				}
				require.NoError(t, json.Unmarshal([]byte(out), &doc))
				assert.Equal(t, wantHit, doc.CacheHit, "run %d", i+1)
			}

			out, err := runCommand(t, home, "cache", "status")
			require.NoError(t, err)
			assert.Contains(t, out, string(b.backend))

			out, err = runCommand(t, home, "history", "status")
			require.NoError(t, err)
			assert.Contains(t, out, "Total Runs: 2")

			_, err = runCommand(t, home, "history", "migrate", "--target-version", "1")
			require.NoError(t, err)
			_, err = runCommand(t, home, "history", "migrate")
			require.NoError(t, err)
		})
	}
}

// TestStoresWithDatabases exercises RankProblem with both stores on each SQL backend.
func TestStoresWithDatabases(t *testing.T) {
	in, err := problem.Load("testdata/vendors.yaml")
	require.NoError(t, err)

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			connStr := b.start(t)

			cache, err := iocache.NewCacheStore("fuzzyrank_result_cache", b.backend, connStr)
			require.NoError(t, err)
			defer func() { _ = cache.Close() }()
			history, err := iocache.NewHistoryStore(b.backend, connStr)
			require.NoError(t, err)
			defer func() { _ = history.Close() }()

			mgr := iocache.NewCacheStoreManager(cache, history)
			cfg := &contract.Config{Precision: contract.DefaultPrecision, Limits: schema.DefaultLimits}

			first, err := core.RankProblem(context.Background(), cfg, mgr, in)
			require.NoError(t, err)
			assert.False(t, first.CacheHit)

			second, err := core.RankProblem(context.Background(), cfg, mgr, in)
			require.NoError(t, err)
			assert.True(t, second.CacheHit)
			assert.Equal(t, first.Result.Closeness, second.Result.Closeness)

			cacheStatus, err := cache.GetStatus()
			require.NoError(t, err)
			assert.Equal(t, 1, cacheStatus.TotalEntries)

			status, err := history.GetStatus()
			require.NoError(t, err)
			assert.Equal(t, 2, status.TotalRuns)
			assert.Equal(t, 6, status.TotalRankedItems)

			runs, err := history.GetAllRuns()
			require.NoError(t, err)
			require.Len(t, runs, 2)
			assert.Equal(t, first.RunID, runs[0].RunUUID)

			entries, err := history.GetAllEntries()
			require.NoError(t, err)
			require.Len(t, entries, 6)
			assert.Equal(t, contract.GetPlainLabel(entries[0].Closeness), entries[0].AcceptanceLabel)
		})
	}
}
