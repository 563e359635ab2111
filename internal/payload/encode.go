// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

// Package payload turns validated field records into the exact text embedded
// inside a QR code. Each encoder reproduces an external wire format (WIFI:,
// BEGIN:VCARD, mailto:, https://wa.me/, SMSTO:, geo links) bit-for-bit;
// standard scanner apps on phones misbehave on anything else.
//
// Encoders are pure and total on validated input: they never fail on their
// own. Callers must validate first; behavior on unvalidated records with
// empty required fields is undefined.
package payload

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dkovalev/qr-mint/models"
)

// EncodeWiFi produces the de-facto Wi-Fi join scheme:
//
//	WIFI:T:<ENC>;S:<SSID>;P:<PASSWORD>;;
//
// SSID and password are inserted verbatim. The trailing ";;" terminator is
// mandatory and fixed.
func EncodeWiFi(f models.WiFiFields) string {
	return "WIFI:T:" + string(f.Encryption) + ";S:" + f.SSID + ";P:" + f.Password + ";;"
}

// EncodeVCard produces a VERSION:3.0 vCard block with a fixed line order.
// Optional fields are emitted even when empty, producing empty trailing
// values on their lines, so the shape stays parseable by standard vCard
// readers. The PHOTO line is the only conditional one.
func EncodeVCard(f models.VCardFields) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + f.FirstName + " " + f.LastName,
		"TEL;TYPE=mobile:" + f.Mobile,
		"EMAIL:" + f.Email,
		"ORG:" + f.Company,
		"TITLE:" + f.JobTitle,
		"ADR:;;" + strings.Join([]string{f.Street, f.City, f.State, f.Zip, f.Country}, ";"),
		"URL:" + f.Website,
	}
	if f.PhotoURI != "" {
		lines = append(lines, "PHOTO;VALUE=URL:"+f.PhotoURI)
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// EncodeEmail produces a mailto: link. Subject and body are percent-encoded
// as query component text; the recipient is inserted verbatim and is not
// validated as an address.
func EncodeEmail(f models.EmailFields) string {
	return "mailto:" + f.Recipient + "?subject=" + queryEscape(f.Subject) + "&body=" + queryEscape(f.Body)
}

// EncodeWhatsApp produces an https://wa.me/ chat link. All non-digit
// characters are stripped from the local number before the calling code is
// prepended. The ?text= segment is omitted entirely, not emitted empty,
// when no message was supplied.
func EncodeWhatsApp(f models.PhoneMessageFields) string {
	link := "https://wa.me/" + f.CallingCode + f.NormalizedNumber()
	if f.Message != "" {
		link += "?text=" + queryEscape(f.Message)
	}
	return link
}

// EncodeSMS produces an SMSTO: record with the same phone normalization as
// EncodeWhatsApp. The message follows a single colon verbatim, even when
// empty.
func EncodeSMS(f models.PhoneMessageFields) string {
	return "SMSTO:" + f.CallingCode + f.NormalizedNumber() + ":" + f.Message
}

// EncodeSocialLink is the identity encoding: the validated URL is the
// payload. Platform is display-only and never reaches the payload.
func EncodeSocialLink(f models.SocialLinkFields) string {
	return f.URL
}

// EncodeText is the identity encoding for arbitrary text or URLs.
func EncodeText(f models.TextFields) string {
	return f.Text
}

// EncodeGeo produces a Google Maps link from the raw decimal coordinates.
func EncodeGeo(f models.GeoFields) string {
	return "https://www.google.com/maps?q=" + formatCoordinate(*f.Latitude) + "," + formatCoordinate(*f.Longitude)
}

// queryEscape percent-encodes s as URL query component text with spaces as
// %20 rather than "+", matching what browsers and scanner apps expect
// inside mailto: and wa.me links.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// formatCoordinate renders a coordinate with the shortest decimal
// representation that round-trips, without exponent notation.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
