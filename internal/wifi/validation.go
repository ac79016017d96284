package wifi

import (
	"unicode/utf8"
)

// Field identifies a form field that can carry a validation error.
type Field string

const (
	FieldSSID        Field = "ssid"
	FieldPassword    Field = "password"
	FieldEAPIdentity Field = "eapIdentity"
)

// Label returns the English field name used in CLI messages.
func (f Field) Label() string {
	switch f {
	case FieldSSID:
		return "network name (SSID)"
	case FieldPassword:
		return "password"
	case FieldEAPIdentity:
		return "EAP identity"
	default:
		return string(f)
	}
}

// MessageKey identifies a localizable message.
type MessageKey string

// Validation message keys
const (
	MsgSSIDRequired     MessageKey = "wifi.alert.name"
	MsgPasswordLength8  MessageKey = "wifi.alert.password.length.8"
	MsgPasswordLength5  MessageKey = "wifi.alert.password.length.5"
	MsgPasswordRequired MessageKey = "wifi.alert.password"
	MsgIdentityRequired MessageKey = "wifi.alert.eapIdentity"
)

// Minimum password lengths per encryption mode
const (
	MinPasswordWPA = 8
	MinPasswordWEP = 5
	MinPasswordEAP = 1
)

// Localizer turns a message key into text for a language.
type Localizer interface {
	Lookup(lang, key string) string
}

// FieldErrors holds at most one message key per field. The zero value means
// no errors.
type FieldErrors struct {
	SSID        MessageKey
	Password    MessageKey
	EAPIdentity MessageKey
}

// Empty reports whether no field carries an error.
func (e FieldErrors) Empty() bool {
	return e.SSID == "" && e.Password == "" && e.EAPIdentity == ""
}

// Get returns the message key for a field.
func (e FieldErrors) Get(field Field) MessageKey {
	switch field {
	case FieldSSID:
		return e.SSID
	case FieldPassword:
		return e.Password
	case FieldEAPIdentity:
		return e.EAPIdentity
	}
	return ""
}

// Merge returns e with every non-empty entry of other written over it.
func (e FieldErrors) Merge(other FieldErrors) FieldErrors {
	if other.SSID != "" {
		e.SSID = other.SSID
	}
	if other.Password != "" {
		e.Password = other.Password
	}
	if other.EAPIdentity != "" {
		e.EAPIdentity = other.EAPIdentity
	}
	return e
}

// Localize resolves every set key through loc.
func (e FieldErrors) Localize(loc Localizer, lang string) map[Field]string {
	out := make(map[Field]string)
	for _, field := range []Field{FieldSSID, FieldPassword, FieldEAPIdentity} {
		if key := e.Get(field); key != "" {
			out[field] = loc.Lookup(lang, string(key))
		}
	}
	return out
}

// Validate runs the print gate. Rules are checked in order and the first
// failure is the only one reported:
//  1. SSID empty
//  2. WPA with a password under 8 characters
//  3. WEP with a password under 5 characters
//  4. WPA2-EAP with an empty password, then an empty identity
func Validate(s Settings) FieldErrors {
	if err := ValidateErr(s); err != nil {
		var errs FieldErrors
		switch err.Field {
		case FieldSSID:
			errs.SSID = err.MessageKey
		case FieldPassword:
			errs.Password = err.MessageKey
		case FieldEAPIdentity:
			errs.EAPIdentity = err.MessageKey
		}
		return errs
	}
	return FieldErrors{}
}

// ValidateErr is Validate returning a typed error instead of FieldErrors.
// It returns nil when the settings may be printed.
func ValidateErr(s Settings) *CardError {
	if s.SSID == "" {
		return NewMissingFieldError(FieldSSID, MsgSSIDRequired)
	}

	passwordLen := utf8.RuneCountInString(s.Password)

	switch s.EncryptionMode {
	case EncryptionWPA:
		if passwordLen < MinPasswordWPA {
			return NewPasswordTooShortError(MsgPasswordLength8, MinPasswordWPA)
		}
	case EncryptionWEP:
		if passwordLen < MinPasswordWEP {
			return NewPasswordTooShortError(MsgPasswordLength5, MinPasswordWEP)
		}
	case EncryptionWPA2EAP:
		if passwordLen < MinPasswordEAP {
			return NewPasswordTooShortError(MsgPasswordRequired, MinPasswordEAP)
		}
		if s.EAPIdentity == "" {
			return NewMissingFieldError(FieldEAPIdentity, MsgIdentityRequired)
		}
	}

	return nil
}
