// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResultStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for recording ranking runs.
type HistoryStore interface {
	// BeginRun creates a new ranking run and returns its numeric ID
	BeginRun(runUUID string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the ranking run with completion data
	EndRun(runID int64, endTime time.Time, result schema.Result) error

	// RecordRanking stores every ranked alternative of a run
	RecordRanking(runID int64, ranking []schema.RankingEntry) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded run, oldest first
	GetAllRuns() ([]schema.RankingRunRecord, error)

	// GetAllEntries returns every recorded ranking entry
	GetAllEntries() ([]schema.RankingEntryRecord, error)

	// Close closes the underlying connection
	Close() error
}

// Publisher sends completion events to a message bus.
type Publisher interface {
	PublishRankingCompleted(run schema.Run) error
	Close()
}
