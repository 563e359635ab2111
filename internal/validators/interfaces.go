// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

// Package validators provides input validation for QR payload generation.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary field records.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Inject a Validator into the payload generator or handlers.
//  2. Call Validate with context, a field record, and optional field names.
//  3. Surface the returned *models.ValidationError next to the failing field.
//
// Validators are pure predicates plus a diagnostic: they never mutate input
// and never perform I/O.
package validators

import "context"

// Validator defines a generic validation interface for field records.
// Implementations report the first failing field so callers can display a
// single deterministic inline error.
type Validator interface {

	// Validate validates the provided record and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
