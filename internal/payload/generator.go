package payload

import (
	"context"
	"fmt"

	"github.com/dkovalev/qr-mint/internal/validators"
	"github.com/dkovalev/qr-mint/models"
)

// Generator is the dispatcher between content kinds and their
// validator/encoder pairs. It holds no mutable state: generation is
// idempotent and safe for concurrent use from multiple UI interactions.
type Generator struct {
	validator validators.Validator
}

// NewGenerator constructs a Generator backed by the default payload
// validator.
func NewGenerator() *Generator {
	return &Generator{validator: validators.NewPayloadValidator()}
}

// Generate runs the validator and encoder for kind against fields and wraps
// the produced text into an EncodedPayload.
//
// Validation failures come back unchanged as *models.ValidationError so the
// caller can attach them to the offending form field; no payload is produced
// and the render step must be skipped. A fields record whose dynamic type
// does not match kind is a programming error reported as ErrKindMismatch;
// a kind outside the enumeration as ErrUnknownKind.
func (g *Generator) Generate(ctx context.Context, kind models.ContentKind, fields any) (models.EncodedPayload, error) {
	switch kind {
	case models.WiFi:
		f, ok := wiFiFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeWiFi(f)}, nil

	case models.VCard:
		f, ok := vCardFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeVCard(f)}, nil

	case models.Email:
		f, ok := emailFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeEmail(f)}, nil

	case models.WhatsApp:
		f, ok := phoneFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeWhatsApp(f)}, nil

	case models.SMS:
		f, ok := phoneFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeSMS(f)}, nil

	case models.SocialLink:
		f, ok := socialLinkFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeSocialLink(f)}, nil

	case models.GenericText:
		f, ok := textFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeText(f)}, nil

	case models.Geo:
		f, ok := geoFields(fields)
		if !ok {
			return models.EncodedPayload{}, kindMismatch(kind, fields)
		}
		if err := g.validator.Validate(ctx, f); err != nil {
			return models.EncodedPayload{}, err
		}
		return models.EncodedPayload{Kind: kind, Text: EncodeGeo(f)}, nil

	default:
		return models.EncodedPayload{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

func kindMismatch(kind models.ContentKind, fields any) error {
	return fmt.Errorf("%w: kind %s, record %T", ErrKindMismatch, kind, fields)
}

// The fields helpers accept both value and pointer forms of each record,
// mirroring the validator's dispatch.

func wiFiFields(v any) (models.WiFiFields, bool) {
	switch f := v.(type) {
	case models.WiFiFields:
		return f, true
	case *models.WiFiFields:
		return *f, true
	}
	return models.WiFiFields{}, false
}

func vCardFields(v any) (models.VCardFields, bool) {
	switch f := v.(type) {
	case models.VCardFields:
		return f, true
	case *models.VCardFields:
		return *f, true
	}
	return models.VCardFields{}, false
}

func emailFields(v any) (models.EmailFields, bool) {
	switch f := v.(type) {
	case models.EmailFields:
		return f, true
	case *models.EmailFields:
		return *f, true
	}
	return models.EmailFields{}, false
}

func phoneFields(v any) (models.PhoneMessageFields, bool) {
	switch f := v.(type) {
	case models.PhoneMessageFields:
		return f, true
	case *models.PhoneMessageFields:
		return *f, true
	}
	return models.PhoneMessageFields{}, false
}

func socialLinkFields(v any) (models.SocialLinkFields, bool) {
	switch f := v.(type) {
	case models.SocialLinkFields:
		return f, true
	case *models.SocialLinkFields:
		return *f, true
	}
	return models.SocialLinkFields{}, false
}

func textFields(v any) (models.TextFields, bool) {
	switch f := v.(type) {
	case models.TextFields:
		return f, true
	case *models.TextFields:
		return *f, true
	}
	return models.TextFields{}, false
}

func geoFields(v any) (models.GeoFields, bool) {
	switch f := v.(type) {
	case models.GeoFields:
		return f, true
	case *models.GeoFields:
		return *f, true
	}
	return models.GeoFields{}, false
}
