package core

import "context"

// Context keys for ranking options
type contextKey string

const (
	runIDKey     contextKey = "runID"
	skipCacheKey contextKey = "skipCache"
)

// WithRunID sets the run ID that RankProblem assigns to its run.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// getRunID returns the run ID from context, if any
func getRunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// WithSkipCache makes RankProblem compute without reading or writing the result cache.
func WithSkipCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipCacheKey, true)
}

// shouldSkipCache returns whether the result cache is bypassed
func shouldSkipCache(ctx context.Context) bool {
	skip, ok := ctx.Value(skipCacheKey).(bool)
	return ok && skip
}
