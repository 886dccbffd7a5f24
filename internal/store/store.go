// Package store is the explicit keyed memoization the surrounding
// application uses for rating runs: season string in, result set out.
// Nothing here is persisted; an entry lives until its TTL lapses or the
// caller invalidates it.
package store

import (
	"sync"
	"time"

	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// DefaultTTL bounds how long a season's results are served before the
// caller must recompute.
const DefaultTTL = time.Hour

type entry struct {
	results  []types.VibeResult
	storedAt time.Time
}

// ResultStore is a mutex-guarded in-memory map from season key to a
// completed result set. Safe for concurrent use.
type ResultStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]entry

	now func() time.Time // test seam
}

// NewResultStore creates a store. Non-positive ttl falls back to
// DefaultTTL.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultStore{
		ttl:  ttl,
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Get returns the cached result set for a season, or false when absent or
// expired. The returned slice is a copy; callers can sort and trim it
// freely.
func (s *ResultStore) Get(season string) ([]types.VibeResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.data[season]
	if !ok {
		return nil, false
	}
	if s.now().Sub(ent.storedAt) >= s.ttl {
		delete(s.data, season)
		return nil, false
	}

	out := make([]types.VibeResult, len(ent.results))
	copy(out, ent.results)
	return out, true
}

// Put stores a season's result set, replacing any previous entry. The
// slice is copied on the way in so later caller mutations cannot leak
// into the cache.
func (s *ResultStore) Put(season string, results []types.VibeResult) {
	kept := make([]types.VibeResult, len(results))
	copy(kept, results)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[season] = entry{results: kept, storedAt: s.now()}
}

// Invalidate drops a season's entry if present.
func (s *ResultStore) Invalidate(season string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, season)
}

// Len reports how many seasons currently have live entries.
func (s *ResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for season, ent := range s.data {
		if s.now().Sub(ent.storedAt) >= s.ttl {
			delete(s.data, season)
			continue
		}
		n++
	}
	return n
}
