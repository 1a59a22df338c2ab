package catalog

import (
	"sync"
)

// Store holds the latest full catalog snapshot. Replace is the only mutator;
// it swaps the whole snapshot atomically, so readers always observe a
// consistent catalog and never a partial merge across fetches.
type Store struct {
	mu      sync.RWMutex
	records []ModelRecord
	byID    map[string]int
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]int),
	}
}

// Replace swaps the entire catalog for the given records, de-duplicating by
// id and keeping the first occurrence. Arrival order is preserved; it is the
// order the default sort mode reports.
func (s *Store) Replace(records []ModelRecord) {
	deduped := make([]ModelRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		if _, seen := index[rec.ID]; seen {
			continue
		}
		index[rec.ID] = len(deduped)
		deduped = append(deduped, rec)
	}

	s.mu.Lock()
	s.records = deduped
	s.byID = index
	s.mu.Unlock()
}

// All returns the current snapshot in arrival order. The returned slice is a
// copy; callers may reorder it freely.
func (s *Store) All() []ModelRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ModelRecord, len(s.records))
	copy(out, s.records)
	return out
}

// ByID looks up a record by its id.
func (s *Store) ByID(id string) (ModelRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return ModelRecord{}, false
	}
	return s.records[i], true
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
