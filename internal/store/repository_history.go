package store

import (
	"context"
	"fmt"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) SaveEntry(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertHistoryQuery(entry)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveEntry").
			Str("id", entry.ID).
			Msg("failed to build insert query for history entry")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveEntry").
			Str("id", entry.ID).
			Str("kind", entry.Kind.String()).
			Msg("failed to execute insert for history entry")
		return fmt.Errorf("failed to save history entry (id=%s): %w", entry.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveEntry").
			Str("id", entry.ID).
			Msg("failed to get rows affected after insert")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", entry.ID, err)
	}

	if rowsAffected == 0 {
		return ErrHistoryEntryNotSaved
	}

	return nil
}

func (h *historyRepository) GetEntries(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHistoryQuery(limit)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.GetEntries").
			Msg("failed to build select query for history entries")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.GetEntries").
			Int("limit", limit).
			Msg("failed to execute query for history entries")
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry

	for rows.Next() {
		var entry models.HistoryEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Kind,
			&entry.Payload,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.GetEntries").
				Msg("failed to scan history entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "historyRepository.GetEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating history rows: %w", rowsErr)
	}

	return entries, nil
}

func (h *historyRepository) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteHistoryQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to build delete query for history entry")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to execute delete for history entry")
		return fmt.Errorf("failed to delete history entry (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "historyRepository.DeleteEntry").
			Str("id", id).
			Msg("no rows affected during delete: record not found")
		return ErrHistoryEntryNotFound
	}

	return nil
}

func (h *historyRepository) Prune(ctx context.Context, keep int) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneHistoryQuery(keep)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Prune").
			Int("keep", keep).
			Msg("failed to build prune query for history")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Prune").
			Int("keep", keep).
			Msg("failed to execute prune for history")
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Prune").
			Int("keep", keep).
			Msg("failed to get rows affected after prune")
		return 0, fmt.Errorf("failed to get rows affected after prune: %w", err)
	}

	return rowsAffected, nil
}
