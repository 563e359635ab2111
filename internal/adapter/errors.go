package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. A 400
// response carrying a decodable validation body is returned as
// *models.ValidationError instead of ErrBadRequest.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
