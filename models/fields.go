package models

// WiFiEncryption is the literal encryption tag embedded in the WIFI: scheme.
type WiFiEncryption string

const (
	EncryptionWPA  WiFiEncryption = "WPA"
	EncryptionWEP  WiFiEncryption = "WEP"
	EncryptionNone WiFiEncryption = "NONE"
	EncryptionRaw  WiFiEncryption = "RAW"
)

// WiFiFields carries network credentials for the WiFi kind.
// Password may be empty only when Encryption is EncryptionNone.
type WiFiFields struct {
	SSID       string         `json:"ssid"`
	Password   string         `json:"password"`
	Encryption WiFiEncryption `json:"encryption"`
}

// VCardFields carries contact data for the VCard kind.
// FirstName, LastName, Mobile and Email are required; the rest are optional
// and emitted as empty values to keep the vCard line order fixed.
type VCardFields struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	Website   string `json:"website,omitempty"`
	PhotoURI  string `json:"photoUri,omitempty"`
}

// EmailFields carries mailto: link data for the Email kind.
// Recipient is required but deliberately not validated for address shape.
type EmailFields struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body,omitempty"`
}

// PhoneMessageFields carries phone data shared by the WhatsApp and SMS
// kinds. CallingCode is a digits-only country calling code supplied by a
// country-picker collaborator; LocalNumber may contain formatting characters
// which are stripped before encoding.
type PhoneMessageFields struct {
	CallingCode string `json:"callingCode"`
	LocalNumber string `json:"localNumber"`
	Message     string `json:"message,omitempty"`
}

// NormalizedNumber returns LocalNumber with every non-digit character
// removed. Formatting characters like "(", ")", "-" and spaces typed by the
// user never reach the payload.
func (f PhoneMessageFields) NormalizedNumber() string {
	digits := make([]byte, 0, len(f.LocalNumber))
	for i := 0; i < len(f.LocalNumber); i++ {
		if f.LocalNumber[i] >= '0' && f.LocalNumber[i] <= '9' {
			digits = append(digits, f.LocalNumber[i])
		}
	}
	return string(digits)
}

// SocialLinkFields carries a social-media profile link. Platform is
// display-only and never reaches the payload.
type SocialLinkFields struct {
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url"`
}

// TextFields carries arbitrary text or a URL for the GenericText kind.
type TextFields struct {
	Text string `json:"text"`
}

// GeoFields carries device coordinates produced by a geolocation
// collaborator. Nil means the collaborator did not supply the coordinate.
type GeoFields struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
