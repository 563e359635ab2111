// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package service

import (
	"context"

	"github.com/dkovalev/qr-mint/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QRService is the server-side contract for turning field records into
// encoded payloads and rendered symbols.
type QRService interface {
	// GeneratePayload validates the request's field record and encodes it
	// into the wire payload for its kind. A validation failure is returned
	// as *models.ValidationError; a missing or mismatched record as a
	// wrapped payload.ErrKindMismatch.
	GeneratePayload(ctx context.Context, req models.GenerateRequest) (models.EncodedPayload, error)

	// GenerateImage encodes the request like GeneratePayload and renders
	// the result as PNG bytes. req.Size selects the edge length in pixels;
	// zero or negative selects the configured default.
	GenerateImage(ctx context.Context, req models.GenerateRequest) ([]byte, error)

	// Kinds returns the wire names of all supported content kinds in
	// presentation order.
	Kinds(ctx context.Context) []string
}

// AppInfoService exposes build-time metadata of the running binary.
type AppInfoService interface {
	// GetAppVersion returns the semantic version string of the build.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns the full build metadata for the version endpoint.
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
