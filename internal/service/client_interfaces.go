package service

import (
	"context"
	"time"

	"github.com/dkovalev/qr-mint/models"
)

// ClientGenerateService is the client-side contract for producing encoded
// payloads. Generation runs locally by default; when a remote backend is
// configured the request is delegated to it instead, so a thin client and a
// full client expose the same behaviour to the TUI.
type ClientGenerateService interface {
	// Generate validates and encodes the field records carried by req.
	// Validation failures are returned as *models.ValidationError regardless
	// of whether generation ran locally or remotely.
	Generate(ctx context.Context, req models.GenerateRequest) (models.EncodedPayload, error)

	// RemoteEnabled reports whether generation is delegated to a remote
	// qr-mint server.
	RemoteEnabled() bool
}

// ClientRenderService renders encoded payloads for on-screen preview and
// file export.
type ClientRenderService interface {
	// TerminalArt renders the payload as half-height block string art for
	// the TUI result screen.
	TerminalArt(ctx context.Context, encoded models.EncodedPayload) (string, error)

	// PNG renders the payload as PNG bytes with the given edge length in
	// pixels. A non-positive size selects the configured default.
	PNG(ctx context.Context, encoded models.EncodedPayload, size int) ([]byte, error)
}

// ClientHistoryService manages the local generation history.
type ClientHistoryService interface {
	// Record persists a freshly generated payload as a new history entry
	// and returns the stored entry with its assigned ID.
	Record(ctx context.Context, encoded models.EncodedPayload) (models.HistoryEntry, error)

	// List returns up to limit entries, newest first. A non-positive limit
	// falls back to the configured history limit.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)

	// Delete removes a single entry by ID.
	Delete(ctx context.Context, id string) error

	// Prune trims the history down to the configured limit and reports how
	// many entries were removed.
	Prune(ctx context.Context) (int64, error)
}

// ClientShareService gets a generated payload out of the application: onto
// disk as a PNG file or into the system clipboard.
type ClientShareService interface {
	// SavePNG renders the payload and writes it into the exports directory.
	// Returns the path of the written file.
	SavePNG(ctx context.Context, encoded models.EncodedPayload, size int) (string, error)

	// CopyPayload places the payload text into the system clipboard.
	CopyPayload(encoded models.EncodedPayload) error
}

// ClientPruneJob is a background worker that keeps the history table at its
// configured size.
type ClientPruneJob interface {
	// Start launches the background goroutine. It prunes every interval,
	// defaulting to 10 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
