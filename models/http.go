package models

// GenerateRequest is the JSON body of the generate endpoints. Exactly one
// of the kind-specific field records must be present and must match Kind.
type GenerateRequest struct {
	Kind       ContentKind         `json:"kind"`
	WiFi       *WiFiFields         `json:"wifi,omitempty"`
	VCard      *VCardFields        `json:"vcard,omitempty"`
	Email      *EmailFields        `json:"email,omitempty"`
	Phone      *PhoneMessageFields `json:"phone,omitempty"`
	SocialLink *SocialLinkFields   `json:"socialLink,omitempty"`
	Text       *TextFields         `json:"text,omitempty"`
	Geo        *GeoFields          `json:"geo,omitempty"`

	// Size is the requested PNG edge length in pixels for the image
	// endpoint. Zero selects the server default.
	Size int `json:"size,omitempty"`
}

// VersionResponse is the JSON body of the version endpoint.
type VersionResponse struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// Fields returns the kind-specific record carried by the request, or nil
// when the record for the declared kind is absent.
func (r *GenerateRequest) Fields() any {
	switch r.Kind {
	case WiFi:
		if r.WiFi != nil {
			return *r.WiFi
		}
	case VCard:
		if r.VCard != nil {
			return *r.VCard
		}
	case Email:
		if r.Email != nil {
			return *r.Email
		}
	case WhatsApp, SMS:
		if r.Phone != nil {
			return *r.Phone
		}
	case SocialLink:
		if r.SocialLink != nil {
			return *r.SocialLink
		}
	case GenericText:
		if r.Text != nil {
			return *r.Text
		}
	case Geo:
		if r.Geo != nil {
			return *r.Geo
		}
	}
	return nil
}
