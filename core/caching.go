package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// currentCacheVersion defines the version of the cached result schema
const currentCacheVersion = 1

// cacheTTL bounds how long a cached result is served
const cacheTTL = 7 * 24 * time.Hour

// Fingerprint returns a content hash of a decision problem. Problems that
// resize to the same matrices share a fingerprint, whatever their raw layout.
func Fingerprint(in schema.Input) string {
	canonical := algo.Resize(in, in.NumExperts, in.NumCriteria, in.NumAlternatives)
	data, err := json.Marshal(canonical)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// cachedCompute runs the pipeline on in, serving the result from store when possible.
// It reports whether the result came from the cache.
func cachedCompute(store contract.CacheStore, in schema.Input) (schema.Result, bool) {
	key := Fingerprint(in)
	if store == nil || key == "" {
		result := algo.Compute(in)
		result.Fingerprint = key
		return result, false
	}

	// Check for cache hit
	if result := checkCacheHit(store, key); result != nil {
		return *result, true
	}

	// Cache miss: compute and store
	return computeAndStore(store, in, key), false
}

// checkCacheHit attempts to retrieve and validate a cached result
func checkCacheHit(store contract.CacheStore, key string) *schema.Result {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion && time.Since(time.Unix(ts, 0)) <= cacheTTL {
		var result schema.Result
		if err := json.Unmarshal(data, &result); err == nil && result.Fingerprint == key {
			return &result // Cache hit
		}
	}

	return nil // Cache miss (stale, version mismatch or corrupt)
}

// computeAndStore computes the result and stores it in cache
func computeAndStore(store contract.CacheStore, in schema.Input, key string) schema.Result {
	result := algo.Compute(in)
	result.Fingerprint = key

	if data, err := json.Marshal(result); err == nil {
		if err := store.Set(key, data, currentCacheVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("Failed to cache ranking result", err)
		}
	}
	return result
}
