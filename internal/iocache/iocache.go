// Package iocache persists ranking results and ranking history.
package iocache

import (
	"sync"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
)

// CacheStoreManager manages the result cache and the history store.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	results      contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// NewCacheStoreManager returns a manager over already opened stores.
// Either store may be nil.
func NewCacheStoreManager(results contract.CacheStore, history contract.HistoryStore) *CacheStoreManager {
	return &CacheStoreManager{results: results, history: history}
}

// GetResultStore returns the result CacheStore.
func (mgr *CacheStoreManager) GetResultStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}

// GetHistoryStore returns the HistoryStore.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
