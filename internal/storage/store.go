// ABOUTME: Store contract for the durable history list.
// ABOUTME: Whole-collection load/save only; no partial updates or deletes.
package storage

import "github.com/flittly/gohard/internal/models"

// Store persists the history list as a single opaque blob. Load reads the
// whole list; Save rewrites it in full. There is no edit or delete of
// individual entries.
type Store interface {
	Load() ([]models.HistoryEntry, error)
	Save(entries []models.HistoryEntry) error
	Close() error
}
