package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/store"
	"github.com/dkovalev/qr-mint/internal/utils"
	"github.com/dkovalev/qr-mint/models"
)

type clientHistoryService struct {
	repository   store.HistoryRepository
	uuidGen      *utils.UUIDGenerator
	historyLimit int

	logger *logger.Logger
}

func NewClientHistoryService(repository store.HistoryRepository, historyLimit int, logger *logger.Logger) ClientHistoryService {
	if historyLimit <= 0 {
		historyLimit = 200
	}

	return &clientHistoryService{
		repository:   repository,
		uuidGen:      utils.NewUUIDGenerator(),
		historyLimit: historyLimit,
		logger:       logger,
	}
}

func (s *clientHistoryService) Record(ctx context.Context, encoded models.EncodedPayload) (models.HistoryEntry, error) {
	if encoded.Text == "" {
		return models.HistoryEntry{}, ErrEmptyPayload
	}

	entry := models.HistoryEntry{
		ID:        s.uuidGen.Generate(),
		Kind:      encoded.Kind,
		Payload:   encoded.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.SaveEntry(ctx, entry); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("record history entry: %w", err)
	}

	return entry, nil
}

func (s *clientHistoryService) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}

	entries, err := s.repository.GetEntries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history entries: %w", err)
	}

	return entries, nil
}

func (s *clientHistoryService) Delete(ctx context.Context, id string) error {
	if err := s.repository.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}

	return nil
}

func (s *clientHistoryService) Prune(ctx context.Context) (int64, error) {
	removed, err := s.repository.Prune(ctx, s.historyLimit)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}

	if removed > 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "clientHistoryService.Prune").
			Int64("removed", removed).
			Int("keep", s.historyLimit).
			Msg("pruned history entries")
	}

	return removed, nil
}
