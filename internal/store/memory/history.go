// Package memory provides in-memory store implementations. The history
// store is process-lifetime only; entries are lost on restart, which
// matches the session-scoped nature of conversion history.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/usama6513/convert-api/internal/store"
)

// HistoryStore is an in-memory, append-only implementation of
// store.HistoryStore. It is safe for concurrent use.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []store.HistoryEntry

	// now is replaceable for tests
	now func() time.Time
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		now: time.Now,
	}
}

// Append adds an entry to the history, assigning its ID and timestamp.
func (s *HistoryStore) Append(_ context.Context, entry store.HistoryEntry) (store.HistoryEntry, error) {
	if entry.FromUnit == "" || entry.ToUnit == "" {
		return store.HistoryEntry{}, fmt.Errorf("%w: history entry must name both units", store.ErrInvalidEntity)
	}

	entry.ID = uuid.New()
	entry.CreatedAt = s.now().UTC()

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry, nil
}

// List returns a copy of all entries in insertion order.
func (s *HistoryStore) List(_ context.Context) ([]store.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
