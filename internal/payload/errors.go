package payload

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown content kind")
	ErrKindMismatch = errors.New("fields record does not match content kind")
)
