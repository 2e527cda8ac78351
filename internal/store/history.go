package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one completed conversion for display.
type HistoryEntry struct {
	// ID uniquely identifies the entry.
	ID uuid.UUID

	// Value is the input quantity as entered by the caller.
	Value float64

	// FromUnit and ToUnit are canonical unit names or uppercase
	// currency codes.
	FromUnit string
	ToUnit   string

	// Result is the computed output quantity.
	Result float64

	// Category names the category the conversion was resolved to.
	Category string

	// Method records the entry path: "direct" for structured requests,
	// "text" for natural-language requests.
	Method string

	// CreatedAt is the time the conversion completed.
	CreatedAt time.Time
}

// HistoryStore defines the interface for conversion history persistence.
type HistoryStore interface {
	// Append adds an entry to the history. The entry's ID and CreatedAt
	// are assigned by the store; the passed entry is not mutated.
	// Returns ErrInvalidEntity if the entry names no units.
	Append(ctx context.Context, entry HistoryEntry) (HistoryEntry, error)

	// List returns all recorded entries in insertion order, oldest
	// first. The returned slice is a copy; callers may modify it freely.
	List(ctx context.Context) ([]HistoryEntry, error)
}
