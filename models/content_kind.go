package models

import "fmt"

// ContentKind defines the category of data encoded into a QR payload.
// The value selects which validator/encoder pair runs for a generation
// request. It is fixed for the lifetime of a single generation action.
type ContentKind int

const (
	// WiFi encodes network credentials in the de-facto WIFI: scheme
	// recognized by phone camera apps for auto-join.
	WiFi ContentKind = 1

	// VCard encodes a contact card as a BEGIN:VCARD..END:VCARD block.
	VCard ContentKind = 2

	// Email encodes a mailto: link with optional subject and body.
	Email ContentKind = 3

	// WhatsApp encodes an https://wa.me/ chat link with an optional
	// prefilled message.
	WhatsApp ContentKind = 4

	// SMS encodes an SMSTO: record with an optional message.
	SMS ContentKind = 5

	// SocialLink encodes a social-media profile URL verbatim.
	SocialLink ContentKind = 6

	// GenericText encodes arbitrary user text or a URL verbatim.
	GenericText ContentKind = 7

	// Geo encodes device coordinates as a Google Maps link.
	Geo ContentKind = 8
)

// kindNames maps every ContentKind to its canonical wire name used in the
// HTTP API and the history store.
var kindNames = map[ContentKind]string{
	WiFi:        "wifi",
	VCard:       "vcard",
	Email:       "email",
	WhatsApp:    "whatsapp",
	SMS:         "sms",
	SocialLink:  "social_link",
	GenericText: "text",
	Geo:         "geo",
}

// ContentKinds returns all supported kinds in a fixed presentation order.
func ContentKinds() []ContentKind {
	return []ContentKind{WiFi, VCard, Email, WhatsApp, SMS, SocialLink, GenericText, Geo}
}

// String returns the canonical wire name of the kind, or "unknown" for
// values outside the enumeration.
func (k ContentKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseContentKind resolves a wire name back to its ContentKind.
func ParseContentKind(name string) (ContentKind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown content kind: %q", name)
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as their
// wire names in JSON.
func (k ContentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ContentKind) UnmarshalText(text []byte) error {
	kind, err := ParseContentKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
