package schema

import "time"

// CacheStatus represents the status of the result cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the ranking history store.
type HistoryStatus struct {
	Backend          string           `json:"backend"`
	Connected        bool             `json:"connected"`
	TotalRuns        int              `json:"total_runs"`
	LastRunID        int64            `json:"last_run_id"`
	LastRunTime      time.Time        `json:"last_run_time"`
	OldestRunTime    time.Time        `json:"oldest_run_time"`
	TotalRankedItems int              `json:"total_ranked_items"`
	TableSizes       map[string]int64 `json:"table_sizes"`
}

// RankingEntryRecord represents a row from the fuzzyrank_ranking_entries table.
type RankingEntryRecord struct {
	RunID            int64
	Rank             int32
	AlternativeIndex int32
	Alternative      string
	Closeness        float64
	DistToFPIS       float64
	DistToFNIS       float64
	AcceptanceLabel  string
}
