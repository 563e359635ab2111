package store

import (
	"context"

	"github.com/dkovalev/qr-mint/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/history_repository_mock.go -package=mock

// HistoryRepository is the persistence contract for the client-side
// generation history.
type HistoryRepository interface {
	// SaveEntry inserts a new history row. The entry must carry a unique ID
	// and a non-empty payload.
	SaveEntry(ctx context.Context, entry models.HistoryEntry) error

	// GetEntries returns up to limit entries, newest first. A non-positive
	// limit returns all entries.
	GetEntries(ctx context.Context, limit int) ([]models.HistoryEntry, error)

	// DeleteEntry removes the entry with the given ID. Returns
	// [ErrHistoryEntryNotFound] if no row matches.
	DeleteEntry(ctx context.Context, id string) error

	// Prune deletes all but the keep most recent entries and reports how
	// many rows were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
