// Package qr renders encoded payloads as QR symbols. It is the only place
// that talks to the symbol-encoding library; the payload core hands over an
// opaque string and never depends on rendering.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultPNGSize is the PNG edge length in pixels used when the caller does
// not request a size.
const DefaultPNGSize = 256

// Renderer produces PNG bytes and terminal string art for a payload.
// The zero-value recovery level of the library (Medium) reads reliably on
// phone cameras while keeping symbols small.
type Renderer struct {
	level qrcode.RecoveryLevel
}

// NewRenderer constructs a Renderer with medium error correction.
func NewRenderer() *Renderer {
	return &Renderer{level: qrcode.Medium}
}

// PNG renders text as a PNG with a width and height of size pixels.
// A non-positive size selects DefaultPNGSize.
func (r *Renderer) PNG(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultPNGSize
	}

	png, err := qrcode.Encode(text, r.level, size)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}

// Terminal renders text as half-height block string art suitable for
// previewing inside the TUI.
func (r *Renderer) Terminal(text string) (string, error) {
	q, err := qrcode.New(text, r.level)
	if err != nil {
		return "", fmt.Errorf("render qr terminal art: %w", err)
	}

	// Dark modules on a light terminal scan fine either way.
	return q.ToSmallString(false), nil
}
