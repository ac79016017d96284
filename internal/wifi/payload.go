package wifi

import (
	"strings"
)

const (
	payloadPrefix = "WIFI:"

	typeWPA    = "WPA"
	typeWEP    = "WEP"
	typeNoPass = "nopass"
)

// escapedChars must be backslash-escaped inside payload values.
const escapedChars = `\;:,"`

// Escape prefixes every \ ; : , and " in s with a backslash.
// The string is walked once, so the backslashes added here are never
// escaped a second time.
func Escape(s string) string {
	if !strings.ContainsAny(s, escapedChars) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(escapedChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape applies the scanner-side rule: a backslash makes the next
// character literal. A trailing lone backslash is kept as is.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

// Encode builds the QR payload for the settings.
//
// Field order is fixed: S, then E and I for WPA2-EAP, then T, then P unless
// the network is open, then H when the SSID is hidden. The payload always ends
// with ";;". Encode performs no validation, an empty SSID still produces a
// well-formed payload.
func Encode(s Settings) string {
	var b strings.Builder

	b.WriteString(payloadPrefix)
	writeField(&b, "S", Escape(s.SSID))

	encryptionType := typeWPA
	withPassword := true

	switch s.EncryptionMode {
	case EncryptionNone:
		encryptionType = typeNoPass
		withPassword = false
	case EncryptionWEP:
		encryptionType = typeWEP
	case EncryptionWPA2EAP:
		// There is no enterprise token scanners understand; the extension
		// fields go right after the SSID.
		writeField(&b, "E", string(s.EAPMethod))
		writeField(&b, "I", Escape(s.EAPIdentity))
	}

	writeField(&b, "T", encryptionType)
	if withPassword {
		writeField(&b, "P", Escape(s.Password))
	}
	if s.HiddenSSID {
		writeField(&b, "H", "true")
	}

	b.WriteByte(';')
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte(';')
}
