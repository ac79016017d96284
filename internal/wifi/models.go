package wifi

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncryptionMode selects how the network is secured.
type EncryptionMode string

const (
	EncryptionNone    EncryptionMode = "None"
	EncryptionWPA     EncryptionMode = "WPA"
	EncryptionWEP     EncryptionMode = "WEP"
	EncryptionWPA2EAP EncryptionMode = "WPA2-EAP"
)

// EncryptionModes lists the modes in the order the form offers them.
var EncryptionModes = []EncryptionMode{
	EncryptionNone,
	EncryptionWPA,
	EncryptionWPA2EAP,
	EncryptionWEP,
}

// Label returns the human readable name shown in mode pickers.
func (m EncryptionMode) Label() string {
	switch m {
	case EncryptionNone:
		return "None"
	case EncryptionWPA:
		return "WPA/WPA2/WPA3"
	case EncryptionWEP:
		return "WEP"
	case EncryptionWPA2EAP:
		return "WPA2-EAP"
	default:
		return string(m)
	}
}

// ParseEncryptionMode accepts the canonical names plus a few common aliases
// ("open", "nopass", "wpa2", "wpa3", "eap"), case-insensitively.
func ParseEncryptionMode(s string) (EncryptionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "open", "nopass":
		return EncryptionNone, nil
	case "wpa", "wpa2", "wpa3", "wpa/wpa2/wpa3":
		return EncryptionWPA, nil
	case "wep":
		return EncryptionWEP, nil
	case "wpa2-eap", "eap", "enterprise":
		return EncryptionWPA2EAP, nil
	}
	return "", NewInputError(fmt.Sprintf("unknown encryption mode %q (use None, WPA, WEP or WPA2-EAP)", s))
}

// EAPMethod is the enterprise authentication method. Only PWD is offered today.
type EAPMethod string

const (
	EAPMethodPWD EAPMethod = "PWD"
)

// EAPMethods lists the supported EAP methods.
var EAPMethods = []EAPMethod{EAPMethodPWD}

// ParseEAPMethod validates an EAP method name.
func ParseEAPMethod(s string) (EAPMethod, error) {
	for _, m := range EAPMethods {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", NewInputError(fmt.Sprintf("unsupported EAP method %q", s))
}

// MaxSSIDLength is the longest SSID the form accepts, in characters.
const MaxSSIDLength = 32

// MaxPasswordLength is the longest password the form accepts, in characters.
const MaxPasswordLength = 63

// Settings is everything the user entered for one card.
//
// Network fields feed the QR payload. Display fields (HidePassword, Portrait,
// AdditionalCards, HideTip, SVGImage) only affect how the card is rendered or
// exported.
type Settings struct {
	// Network
	SSID           string         `yaml:"ssid" json:"ssid"`
	Password       string         `yaml:"password" json:"password"`
	EncryptionMode EncryptionMode `yaml:"encryption_mode" json:"encryptionMode"`
	EAPMethod      EAPMethod      `yaml:"eap_method" json:"eapMethod"`
	EAPIdentity    string         `yaml:"eap_identity" json:"eapIdentity"`
	HiddenSSID     bool           `yaml:"hidden_ssid" json:"hiddenSSID"`

	// Display
	HidePassword    bool `yaml:"hide_password" json:"hidePassword"`
	Portrait        bool `yaml:"portrait" json:"portrait"`
	AdditionalCards int  `yaml:"additional_cards" json:"additionalCards"`
	HideTip         bool `yaml:"hide_tip" json:"hideTip"`
	SVGImage        bool `yaml:"svg_image" json:"svgImage"`
}

// DefaultSettings returns the settings a fresh form starts with.
func DefaultSettings() Settings {
	return Settings{
		EncryptionMode: EncryptionWPA,
		EAPMethod:      EAPMethodPWD,
		SVGImage:       true,
	}
}

// IsEnterprise reports whether the EAP fields are in play.
func (s Settings) IsEnterprise() bool {
	return s.EncryptionMode == EncryptionWPA2EAP
}

// ShowsPassword reports whether the password row appears on the card.
func (s Settings) ShowsPassword() bool {
	return !s.HidePassword && s.EncryptionMode != EncryptionNone
}

// Copies returns how many cards a print run produces.
func (s Settings) Copies() int {
	if s.AdditionalCards < 0 {
		return 1
	}
	return s.AdditionalCards + 1
}

// CheckLimits enforces the form's input length limits (32-character SSID,
// 63-character password). Forms enforce these while typing; this is for
// values that arrive from flags or preset files.
func (s Settings) CheckLimits() error {
	if n := utf8.RuneCountInString(s.SSID); n > MaxSSIDLength {
		return NewInputError(fmt.Sprintf("SSID too long (max %d chars): %d chars", MaxSSIDLength, n))
	}
	if n := utf8.RuneCountInString(s.Password); n > MaxPasswordLength {
		return NewInputError(fmt.Sprintf("password too long (max %d chars): %d chars", MaxPasswordLength, n))
	}
	if s.AdditionalCards < 0 {
		return NewInputError(fmt.Sprintf("additional cards must be 0 or more, got %d", s.AdditionalCards))
	}
	return nil
}
