package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/models"
)

type clientShareService struct {
	render     ClientRenderService
	exportsDir string

	logger *logger.Logger
}

func NewClientShareService(render ClientRenderService, exportsDir string, logger *logger.Logger) ClientShareService {
	return &clientShareService{
		render:     render,
		exportsDir: exportsDir,
		logger:     logger,
	}
}

func (s *clientShareService) SavePNG(ctx context.Context, encoded models.EncodedPayload, size int) (string, error) {
	log := logger.FromContext(ctx)

	png, err := s.render.PNG(ctx, encoded, size)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.exportsDir, 0o755); err != nil {
		log.Err(err).
			Str("func", "clientShareService.SavePNG").
			Str("dir", s.exportsDir).
			Msg("failed to create exports directory")
		return "", fmt.Errorf("create exports directory: %w", err)
	}

	path := filepath.Join(s.exportsDir, exportFileName(encoded.Kind, time.Now()))
	if err = os.WriteFile(path, png, 0o644); err != nil {
		log.Err(err).
			Str("func", "clientShareService.SavePNG").
			Str("path", path).
			Msg("failed to write png file")
		return "", fmt.Errorf("write png file: %w", err)
	}

	return path, nil
}

func (s *clientShareService) CopyPayload(encoded models.EncodedPayload) error {
	if encoded.Text == "" {
		return ErrEmptyPayload
	}

	if err := clipboard.WriteAll(encoded.Text); err != nil {
		s.logger.Err(err).
			Str("func", "clientShareService.CopyPayload").
			Msg("failed to write payload to clipboard")
		return fmt.Errorf("copy payload to clipboard: %w", err)
	}

	return nil
}

// exportFileName builds a collision-resistant name like
// "wifi-20260801-120305.png".
func exportFileName(kind models.ContentKind, at time.Time) string {
	return fmt.Sprintf("%s-%s.png", kind, at.Format("20060102-150405"))
}
