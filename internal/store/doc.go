// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic; the only entity the conversion service
// persists is the append-only conversion history.
package store
