package service

import (
	"context"
	"fmt"

	"github.com/dkovalev/qr-mint/internal/adapter"
	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/models"
)

type clientGenerateService struct {
	local  *payload.Generator
	remote adapter.RemoteGenerator

	logger *logger.Logger
}

// NewClientGenerateService builds the generation service. A nil remote keeps
// all generation local to the client process.
func NewClientGenerateService(local *payload.Generator, remote adapter.RemoteGenerator, logger *logger.Logger) ClientGenerateService {
	return &clientGenerateService{
		local:  local,
		remote: remote,
		logger: logger,
	}
}

func (s *clientGenerateService) Generate(ctx context.Context, req models.GenerateRequest) (models.EncodedPayload, error) {
	log := logger.FromContext(ctx)

	if s.remote != nil {
		encoded, err := s.remote.Generate(ctx, req)
		if err != nil {
			log.Debug().
				Err(err).
				Str("func", "clientGenerateService.Generate").
				Str("kind", req.Kind.String()).
				Msg("remote generation failed")
			return models.EncodedPayload{}, err
		}
		return encoded, nil
	}

	fields := req.Fields()
	if fields == nil {
		return models.EncodedPayload{}, fmt.Errorf("%w: %s", ErrNoFieldRecord, req.Kind)
	}

	encoded, err := s.local.Generate(ctx, req.Kind, fields)
	if err != nil {
		log.Debug().
			Err(err).
			Str("func", "clientGenerateService.Generate").
			Str("kind", req.Kind.String()).
			Msg("local generation failed")
		return models.EncodedPayload{}, err
	}

	return encoded, nil
}

func (s *clientGenerateService) RemoteEnabled() bool {
	return s.remote != nil
}
