package models

import "fmt"

// EncodedPayload is the final QR payload produced by an encoder.
// It is created once per generation action, handed to the rendering
// collaborator verbatim, and never mutated.
type EncodedPayload struct {
	Kind ContentKind `json:"kind"`
	Text string      `json:"payload"`
}

// FieldReason classifies why a field failed validation.
type FieldReason string

const (
	// ReasonMissing marks a required field that was empty or absent.
	ReasonMissing FieldReason = "Missing"

	// ReasonMalformed is reserved for stricter validation rules.
	// No current validator produces it.
	ReasonMalformed FieldReason = "Malformed"
)

// ValidationError reports the first failing field of a generation request.
// It travels as a value so the UI layer can translate the machine-readable
// field identifier into a localized inline message; the core never renders
// messages itself.
type ValidationError struct {
	Field  string      `json:"field"`
	Reason FieldReason `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, string(e.Reason))
}

// NewMissingFieldError builds a ValidationError with ReasonMissing.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonMissing}
}
