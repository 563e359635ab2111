// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

// Package adapter provides transport-layer abstractions for communicating with
// a remote qr-mint server.
//
// The primary abstraction is [RemoteGenerator], which decouples the service
// layer from the underlying protocol. The package currently ships an HTTP/REST
// implementation ([NewHTTPRemoteGenerator]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. Validation failures reported by the server are decoded back into
// [models.ValidationError] values, so a thin client sees the same error shape
// as local generation.
package adapter

import (
	"context"

	"github.com/dkovalev/qr-mint/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_generator_mock.go -package=mock

// RemoteGenerator defines transport-agnostic access to a remote qr-mint
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type RemoteGenerator interface {
	// Generate submits the field records to the server and returns the
	// encoded payload. A validation failure on the server side is returned
	// as a *models.ValidationError.
	Generate(ctx context.Context, req models.GenerateRequest) (models.EncodedPayload, error)

	// GenerateImage submits the field records and returns the rendered PNG
	// bytes. The requested size travels in req.Size; zero selects the
	// server default.
	GenerateImage(ctx context.Context, req models.GenerateRequest) ([]byte, error)

	// Kinds fetches the wire names of all content kinds the server supports.
	Kinds(ctx context.Context) ([]string, error)

	// Version fetches the server build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)
}
