package service

import (
	"context"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/models"
)

type clientRenderService struct {
	renderer       *qr.Renderer
	defaultPNGSize int

	logger *logger.Logger
}

func NewClientRenderService(renderer *qr.Renderer, defaultPNGSize int, logger *logger.Logger) ClientRenderService {
	if defaultPNGSize <= 0 {
		defaultPNGSize = qr.DefaultPNGSize
	}

	return &clientRenderService{
		renderer:       renderer,
		defaultPNGSize: defaultPNGSize,
		logger:         logger,
	}
}

func (s *clientRenderService) TerminalArt(ctx context.Context, encoded models.EncodedPayload) (string, error) {
	if encoded.Text == "" {
		return "", ErrEmptyPayload
	}

	art, err := s.renderer.Terminal(encoded.Text)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientRenderService.TerminalArt").
			Str("kind", encoded.Kind.String()).
			Msg("failed to render terminal art")
		return "", err
	}

	return art, nil
}

func (s *clientRenderService) PNG(ctx context.Context, encoded models.EncodedPayload, size int) ([]byte, error) {
	if encoded.Text == "" {
		return nil, ErrEmptyPayload
	}

	if size <= 0 {
		size = s.defaultPNGSize
	}

	png, err := s.renderer.PNG(encoded.Text, size)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientRenderService.PNG").
			Str("kind", encoded.Kind.String()).
			Int("size", size).
			Msg("failed to render png")
		return nil, err
	}

	return png, nil
}
