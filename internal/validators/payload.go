package validators

import (
	"context"

	"github.com/dkovalev/qr-mint/models"
)

// Field name constants used to specify which fields should be validated and
// reported back to the UI layer. The values match the JSON names of the
// field records so inline errors can be attached without translation.
const (
	// FieldSSID targets the network name of a WiFi record.
	FieldSSID = "ssid"

	// FieldPassword targets the network password of a WiFi record.
	FieldPassword = "password"

	// FieldFirstName targets the given name of a vCard record.
	FieldFirstName = "firstName"

	// FieldLastName targets the family name of a vCard record.
	FieldLastName = "lastName"

	// FieldMobile targets the mobile phone number of a vCard record.
	FieldMobile = "mobile"

	// FieldEmail targets the email address of a vCard record.
	FieldEmail = "email"

	// FieldRecipient targets the mailto recipient of an email record.
	FieldRecipient = "recipient"

	// FieldLocalNumber targets the local phone number of a WhatsApp/SMS record.
	FieldLocalNumber = "localNumber"

	// FieldURL targets the link of a social-media record.
	FieldURL = "url"

	// FieldText targets the free-form text of a generic text record.
	FieldText = "text"

	// FieldLatitude targets the latitude coordinate of a geo record.
	FieldLatitude = "latitude"

	// FieldLongitude targets the longitude coordinate of a geo record.
	FieldLongitude = "longitude"
)

// PayloadValidator implements the Validator interface for every content-kind
// field record: WiFiFields, VCardFields, EmailFields, PhoneMessageFields,
// SocialLinkFields, TextFields, and GeoFields.
//
// It supports both value and pointer receivers for every record type and
// allows optional field-level scoping via variadic field name arguments.
// Failures are returned as *models.ValidationError values carrying the first
// failing field in a deterministic left-to-right order.
type PayloadValidator struct {
}

// NewPayloadValidator constructs a new PayloadValidator and returns it as
// the Validator interface.
func NewPayloadValidator() Validator {
	return &PayloadValidator{}
}

// Validate dispatches validation to the appropriate record-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported record are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known record.
// Optional fields restrict validation to the named subset; when omitted,
// every rule for the record is checked.
func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WiFiFields:
		return v.validateWiFi(ctx, value, fields...)
	case *models.WiFiFields:
		return v.validateWiFi(ctx, *value, fields...)

	case models.VCardFields:
		return v.validateVCard(ctx, value, fields...)
	case *models.VCardFields:
		return v.validateVCard(ctx, *value, fields...)

	case models.EmailFields:
		return v.validateEmail(ctx, value, fields...)
	case *models.EmailFields:
		return v.validateEmail(ctx, *value, fields...)

	case models.PhoneMessageFields:
		return v.validatePhoneMessage(ctx, value, fields...)
	case *models.PhoneMessageFields:
		return v.validatePhoneMessage(ctx, *value, fields...)

	case models.SocialLinkFields:
		return v.validateSocialLink(ctx, value, fields...)
	case *models.SocialLinkFields:
		return v.validateSocialLink(ctx, *value, fields...)

	case models.TextFields:
		return v.validateText(ctx, value, fields...)
	case *models.TextFields:
		return v.validateText(ctx, *value, fields...)

	case models.GeoFields:
		return v.validateGeo(ctx, value, fields...)
	case *models.GeoFields:
		return v.validateGeo(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateWiFi checks a WiFiFields record.
//
// Default validated fields: SSID, Password. Password is required unless
// encryption is NONE, in which case an open network legitimately has none.
func (v *PayloadValidator) validateWiFi(_ context.Context, data models.WiFiFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSSID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldSSID:
			if data.SSID == "" {
				return models.NewMissingFieldError(FieldSSID)
			}
		case FieldPassword:
			if data.Password == "" && data.Encryption != models.EncryptionNone {
				return models.NewMissingFieldError(FieldPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateVCard checks a VCardFields record.
//
// Default validated fields, in fixed scan order: FirstName, LastName,
// Mobile, Email. The first empty field is reported, matching a
// deterministic left-to-right scan. Optional vCard fields have no rules.
func (v *PayloadValidator) validateVCard(_ context.Context, data models.VCardFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldMobile, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if data.FirstName == "" {
				return models.NewMissingFieldError(FieldFirstName)
			}
		case FieldLastName:
			if data.LastName == "" {
				return models.NewMissingFieldError(FieldLastName)
			}
		case FieldMobile:
			if data.Mobile == "" {
				return models.NewMissingFieldError(FieldMobile)
			}
		case FieldEmail:
			if data.Email == "" {
				return models.NewMissingFieldError(FieldEmail)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail checks an EmailFields record.
//
// Only the recipient is required. No address-shape validation is performed:
// any non-empty string is accepted.
func (v *PayloadValidator) validateEmail(_ context.Context, data models.EmailFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipient}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipient:
			if data.Recipient == "" {
				return models.NewMissingFieldError(FieldRecipient)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePhoneMessage checks a PhoneMessageFields record shared by the
// WhatsApp and SMS kinds.
//
// The local number is required to contain at least one digit after
// formatting characters are stripped.
func (v *PayloadValidator) validatePhoneMessage(_ context.Context, data models.PhoneMessageFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocalNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldLocalNumber:
			if data.NormalizedNumber() == "" {
				return models.NewMissingFieldError(FieldLocalNumber)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSocialLink checks a SocialLinkFields record. Platform is
// display-only and carries no rules.
func (v *PayloadValidator) validateSocialLink(_ context.Context, data models.SocialLinkFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if data.URL == "" {
				return models.NewMissingFieldError(FieldURL)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateText checks a TextFields record.
func (v *PayloadValidator) validateText(_ context.Context, data models.TextFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if data.Text == "" {
				return models.NewMissingFieldError(FieldText)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateGeo checks a GeoFields record. Coordinates are required to be
// present; no range checking is performed.
func (v *PayloadValidator) validateGeo(_ context.Context, data models.GeoFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLatitude, FieldLongitude}
	}

	for _, f := range fields {
		switch f {
		case FieldLatitude:
			if data.Latitude == nil {
				return models.NewMissingFieldError(FieldLatitude)
			}
		case FieldLongitude:
			if data.Longitude == nil {
				return models.NewMissingFieldError(FieldLongitude)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
