package core

import (
	"context"
	"time"

	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/google/uuid"
)

// RankProblem ranks the alternatives of a decision problem.
//
// The input is snapshotted first, so callers may keep editing it. Counts
// above the configured maximums are rejected in every mode. In strict
// mode a problem that fails validation is rejected with every violation
// joined; otherwise counts below the configured minimums are raised and the
// matrices default-filled. The result is memoized by content fingerprint in
// the result cache and the ranking is recorded in the history store, when
// those are enabled.
func RankProblem(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, in schema.Input) (schema.Run, error) {
	if err := ctx.Err(); err != nil {
		return schema.Run{}, err
	}

	start := time.Now()
	runID, ok := getRunID(ctx)
	if !ok {
		runID = uuid.NewString()
	}
	run := schema.Run{RunID: runID, StartedAt: start}

	// --- 1. Snapshot and validate ---
	snapshot := algo.InferCounts(in.Clone())
	if err := algo.CheckSize(snapshot.NumExperts, snapshot.NumCriteria, snapshot.NumAlternatives, cfg.Limits); err != nil {
		return run, err
	}
	if cfg.Strict {
		if err := algo.Validate(snapshot, cfg.Limits); err != nil {
			return run, err
		}
	} else {
		snapshot = algo.ApplyLimits(snapshot, cfg.Limits)
	}

	var cache contract.CacheStore
	var history contract.HistoryStore
	if mgr != nil {
		cache = mgr.GetResultStore()
		history = mgr.GetHistoryStore()
	}
	if shouldSkipCache(ctx) {
		cache = nil
	}

	// --- 2. Begin history tracking (if configured) ---
	var historyID int64
	if history != nil {
		var err error
		historyID, err = history.BeginRun(runID, start, historyParams(cfg, snapshot))
		if err != nil {
			contract.LogWarn("Ranking history initialization failed", err)
			historyID = 0
		}
	}

	// --- 3. Compute (with caching) ---
	run.Result, run.CacheHit = cachedCompute(cache, snapshot)

	// --- 4. End history tracking ---
	if history != nil && historyID > 0 {
		if err := history.RecordRanking(historyID, run.Result.Ranking); err != nil {
			contract.LogWarn("Failed to record ranking", err)
		}
		if err := history.EndRun(historyID, time.Now(), run.Result); err != nil {
			contract.LogWarn("Failed to finalize ranking history", err)
		}
	}

	run.Duration = time.Since(start)
	return run, nil
}

// historyParams describes the run configuration stored with each ranking run.
func historyParams(cfg *contract.Config, in schema.Input) map[string]any {
	return map[string]any{
		"problem":          cfg.ProblemPath,
		"strict":           cfg.Strict,
		"min_experts":      cfg.Limits.MinExperts,
		"min_criteria":     cfg.Limits.MinCriteria,
		"min_alternatives": cfg.Limits.MinAlternatives,
		"experts":          in.NumExperts,
		"criteria":         in.NumCriteria,
		"alternatives":     in.NumAlternatives,
	}
}
