package service

import (
	"context"
	"fmt"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/models"
)

type qrService struct {
	generator      *payload.Generator
	renderer       *qr.Renderer
	defaultPNGSize int

	logger *logger.Logger
}

func NewQRService(generator *payload.Generator, renderer *qr.Renderer, defaultPNGSize int, logger *logger.Logger) QRService {
	if defaultPNGSize <= 0 {
		defaultPNGSize = qr.DefaultPNGSize
	}

	return &qrService{
		generator:      generator,
		renderer:       renderer,
		defaultPNGSize: defaultPNGSize,
		logger:         logger,
	}
}

func (s *qrService) GeneratePayload(ctx context.Context, req models.GenerateRequest) (models.EncodedPayload, error) {
	log := logger.FromContext(ctx)

	fields := req.Fields()
	if fields == nil {
		log.Warn().
			Str("func", "qrService.GeneratePayload").
			Str("kind", req.Kind.String()).
			Msg("request carries no field record for its kind")
		return models.EncodedPayload{}, fmt.Errorf("%w: %s", ErrNoFieldRecord, req.Kind)
	}

	encoded, err := s.generator.Generate(ctx, req.Kind, fields)
	if err != nil {
		log.Debug().
			Err(err).
			Str("func", "qrService.GeneratePayload").
			Str("kind", req.Kind.String()).
			Msg("payload generation failed")
		return models.EncodedPayload{}, err
	}

	return encoded, nil
}

func (s *qrService) GenerateImage(ctx context.Context, req models.GenerateRequest) ([]byte, error) {
	log := logger.FromContext(ctx)

	encoded, err := s.GeneratePayload(ctx, req)
	if err != nil {
		return nil, err
	}

	size := req.Size
	if size <= 0 {
		size = s.defaultPNGSize
	}

	png, err := s.renderer.PNG(encoded.Text, size)
	if err != nil {
		log.Err(err).
			Str("func", "qrService.GenerateImage").
			Str("kind", req.Kind.String()).
			Int("size", size).
			Msg("failed to render png")
		return nil, fmt.Errorf("render image: %w", err)
	}

	return png, nil
}

func (s *qrService) Kinds(ctx context.Context) []string {
	kinds := models.ContentKinds()

	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.String())
	}

	return names
}
