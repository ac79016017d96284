package wifi

import (
	"errors"
	"fmt"

	"github.com/jackie264/wificard/internal/urls"
)

// ErrorType represents the category of a card error
type ErrorType int

const (
	// ErrTypeMissingField indicates a required field (SSID, EAP identity) is empty
	ErrTypeMissingField ErrorType = iota
	// ErrTypePasswordTooShort indicates the password is below the mode's minimum length
	ErrTypePasswordTooShort
	// ErrTypeInput indicates a malformed value handed in from outside (flag, preset)
	ErrTypeInput
	// ErrTypeParse indicates a payload string that could not be read
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeMissingField:
		return "Missing Required Field"
	case ErrTypePasswordTooShort:
		return "Password Too Short"
	case ErrTypeInput:
		return "Invalid Input"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// CardError represents a failure while validating, reading or building a card.
type CardError struct {
	Type       ErrorType  // Category of error
	Field      Field      // Offending field, empty when not field-scoped
	MessageKey MessageKey // Localizable message key, empty when not field-scoped
	Min        int        // Minimum length for ErrTypePasswordTooShort
	Message    string     // English description
	Err        error      // Underlying error (if any)
}

// Error implements the error interface
func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError creates an error for an empty required field
func NewMissingFieldError(field Field, key MessageKey) *CardError {
	return &CardError{
		Type:       ErrTypeMissingField,
		Field:      field,
		MessageKey: key,
		Message:    fmt.Sprintf("%s is required", field.Label()),
	}
}

// NewPasswordTooShortError creates an error for a password below min characters
func NewPasswordTooShortError(key MessageKey, min int) *CardError {
	return &CardError{
		Type:       ErrTypePasswordTooShort,
		Field:      FieldPassword,
		MessageKey: key,
		Min:        min,
		Message:    fmt.Sprintf("password must be at least %d characters", min),
	}
}

// NewInputError creates an error for a malformed external value
func NewInputError(message string) *CardError {
	return &CardError{
		Type:    ErrTypeInput,
		Message: message,
	}
}

// NewParseError creates a payload parsing error
func NewParseError(message string, err error) *CardError {
	return &CardError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks if an error came from the validation gate
func IsValidationError(err error) bool {
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		return cardErr.Type == ErrTypeMissingField || cardErr.Type == ErrTypePasswordTooShort
	}
	return false
}

// IsInputError checks if an error is an invalid input error
func IsInputError(err error) bool {
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		return cardErr.Type == ErrTypeInput
	}
	return false
}

// IsParseError checks if an error is a payload parsing error
func IsParseError(err error) bool {
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		return cardErr.Type == ErrTypeParse
	}
	return false
}

// GetTroubleshootingHint returns a short hint for fixing the error
func GetTroubleshootingHint(err error) string {
	var cardErr *CardError
	if !errors.As(err, &cardErr) {
		return ""
	}

	switch cardErr.Type {
	case ErrTypeMissingField:
		switch cardErr.Field {
		case FieldSSID:
			return "Pass the network name with --ssid"
		case FieldEAPIdentity:
			return "WPA2-EAP networks need a login identity: pass --eap-identity"
		}
	case ErrTypePasswordTooShort:
		return fmt.Sprintf("Use a password of at least %d characters, or pick another --encryption mode", cardErr.Min)
	case ErrTypeInput:
		return "Check the flag values and preset file"
	case ErrTypeParse:
		return "Payloads look like WIFI:S:<name>;T:<WPA|WEP|nopass>;P:<password>;; (see " + urls.PayloadFormat + ")"
	}
	return ""
}
