package wifi

import (
	"fmt"
	"strings"
)

// ParsedPayload is what a scanner reads back out of a payload.
type ParsedPayload struct {
	SSID           string
	Password       string
	EncryptionMode EncryptionMode
	EAPMethod      EAPMethod
	EAPIdentity    string
	HiddenSSID     bool
	Unknown        map[string]string // Fields this parser does not interpret
}

// Settings converts the parsed payload back into a Settings record with
// default display preferences.
func (p ParsedPayload) Settings() Settings {
	s := DefaultSettings()
	s.SSID = p.SSID
	s.Password = p.Password
	s.EncryptionMode = p.EncryptionMode
	s.EAPIdentity = p.EAPIdentity
	s.HiddenSSID = p.HiddenSSID
	if p.EAPMethod != "" {
		s.EAPMethod = p.EAPMethod
	}
	return s
}

// Parse reads a WIFI: payload the way scanner apps do.
//
// Fields may appear in any order. The payload must start with "WIFI:", carry
// an S field (possibly empty) and be terminated by an empty field (";;").
func Parse(payload string) (ParsedPayload, error) {
	var result ParsedPayload

	if !strings.HasPrefix(payload, payloadPrefix) {
		return result, NewParseError("payload must start with WIFI:", nil)
	}

	fields, terminated := splitFields(payload[len(payloadPrefix):])
	if !terminated {
		return result, NewParseError("payload is not terminated with ;;", nil)
	}

	var (
		typeToken string
		haveSSID  bool
		haveType  bool
	)

	for _, field := range fields {
		key, rawValue, ok := strings.Cut(field, ":")
		if !ok || key == "" {
			return result, NewParseError(fmt.Sprintf("malformed field %q", field), nil)
		}
		value := Unescape(rawValue)

		switch key {
		case "S":
			result.SSID = value
			haveSSID = true
		case "T":
			typeToken = value
			haveType = true
		case "P":
			result.Password = value
		case "H":
			result.HiddenSSID = strings.EqualFold(value, "true")
		case "E":
			method, err := ParseEAPMethod(value)
			if err != nil {
				return result, NewParseError("unsupported EAP method", err)
			}
			result.EAPMethod = method
		case "I":
			result.EAPIdentity = value
		default:
			if result.Unknown == nil {
				result.Unknown = make(map[string]string)
			}
			result.Unknown[key] = value
		}
	}

	if !haveSSID {
		return result, NewParseError("payload has no S field", nil)
	}

	switch {
	case !haveType, typeToken == "", strings.EqualFold(typeToken, typeNoPass):
		result.EncryptionMode = EncryptionNone
	case strings.EqualFold(typeToken, typeWEP):
		result.EncryptionMode = EncryptionWEP
	case strings.EqualFold(typeToken, typeWPA), strings.EqualFold(typeToken, "WPA2"):
		result.EncryptionMode = EncryptionWPA
		if result.EAPMethod != "" || result.EAPIdentity != "" {
			result.EncryptionMode = EncryptionWPA2EAP
		}
	default:
		return result, NewParseError(fmt.Sprintf("unknown encryption type %q", typeToken), nil)
	}

	return result, nil
}

// splitFields splits the payload body on unescaped semicolons. It stops at
// the first empty field, which marks the end of the payload.
func splitFields(body string) (fields []string, terminated bool) {
	var current strings.Builder
	escaped := false

	for _, r := range body {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			current.WriteRune(r)
			escaped = true
		case ';':
			if current.Len() == 0 {
				return fields, true
			}
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return fields, false
}
