package schema

import "time"

// Run is one ranking computation together with its bookkeeping.
type Run struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	CacheHit  bool          `json:"cache_hit"`
	Result    Result        `json:"result"`
}

// RankingRunRecord represents a row from the fuzzyrank_ranking_runs table.
type RankingRunRecord struct {
	RunID           int64
	RunUUID         string
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	NumExperts      int32
	NumCriteria     int32
	NumAlternatives int32
	Fingerprint     string
	ConfigParams    *string
}
