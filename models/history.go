package models

import "time"

// HistoryEntry is a single row of the client-side generation history.
// The payload text is stored as produced; re-rendering an entry always
// yields the same symbol.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Kind      ContentKind `json:"kind"`
	Payload   string      `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}
