package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dkovalev/qr-mint/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteGenerator struct {
	client *resty.Client
}

func NewHTTPRemoteGenerator(cfg HTTPClientConfig) RemoteGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteGenerator{client: cli}
}

func (h *httpRemoteGenerator) Generate(ctx context.Context, req models.GenerateRequest) (models.EncodedPayload, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/qr/generate")
	if err != nil {
		return models.EncodedPayload{}, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncodedPayload{}, err
	}

	var payload models.EncodedPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.EncodedPayload{}, fmt.Errorf("decode generate response: %w", err)
	}

	return payload, nil
}

func (h *httpRemoteGenerator) GenerateImage(ctx context.Context, req models.GenerateRequest) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/qr/image")
	if err != nil {
		return nil, fmt.Errorf("generate image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpRemoteGenerator) Kinds(ctx context.Context) ([]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/qr/kinds")
	if err != nil {
		return nil, fmt.Errorf("kinds request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var kinds []string
	if err = json.Unmarshal(resp.Body(), &kinds); err != nil {
		return nil, fmt.Errorf("decode kinds response: %w", err)
	}

	return kinds, nil
}

func (h *httpRemoteGenerator) Version(ctx context.Context) (models.VersionResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	var version models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return models.VersionResponse{}, fmt.Errorf("decode version response: %w", err)
	}

	return version, nil
}
