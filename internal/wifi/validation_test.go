package wifi

import (
	"strings"
	"testing"
)

// TestValidate tests the print gate rules and their priority
func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     FieldErrors
	}{
		// Valid cases
		{"Valid: WPA with 8 chars", Settings{SSID: "Home", Password: "12345678", EncryptionMode: EncryptionWPA}, FieldErrors{}},
		{"Valid: WEP with 5 chars", Settings{SSID: "Home", Password: "abcde", EncryptionMode: EncryptionWEP}, FieldErrors{}},
		{"Valid: open network", Settings{SSID: "Cafe", EncryptionMode: EncryptionNone}, FieldErrors{}},
		{"Valid: EAP with identity", Settings{SSID: "Corp", Password: "x", EncryptionMode: EncryptionWPA2EAP, EAPIdentity: "alice"}, FieldErrors{}},
		{"Valid: 8 multibyte chars", Settings{SSID: "Home", Password: "密码密码密码密码", EncryptionMode: EncryptionWPA}, FieldErrors{}},

		// SSID
		{"Invalid: empty SSID", Settings{Password: "12345678", EncryptionMode: EncryptionWPA}, FieldErrors{SSID: MsgSSIDRequired}},
		{"Invalid: empty SSID wins over short password", Settings{Password: "x", EncryptionMode: EncryptionWPA}, FieldErrors{SSID: MsgSSIDRequired}},
		{"Invalid: empty SSID on open network", Settings{EncryptionMode: EncryptionNone}, FieldErrors{SSID: MsgSSIDRequired}},

		// Password
		{"Invalid: WPA short", Settings{SSID: "Home", Password: "short", EncryptionMode: EncryptionWPA}, FieldErrors{Password: MsgPasswordLength8}},
		{"Invalid: WPA 7 chars", Settings{SSID: "Home", Password: "1234567", EncryptionMode: EncryptionWPA}, FieldErrors{Password: MsgPasswordLength8}},
		{"Invalid: WEP 4 chars", Settings{SSID: "Home", Password: "abcd", EncryptionMode: EncryptionWEP}, FieldErrors{Password: MsgPasswordLength5}},
		{"Invalid: EAP empty password", Settings{SSID: "Corp", EncryptionMode: EncryptionWPA2EAP, EAPIdentity: "alice"}, FieldErrors{Password: MsgPasswordRequired}},
		{"Invalid: EAP empty password wins over identity", Settings{SSID: "Corp", EncryptionMode: EncryptionWPA2EAP}, FieldErrors{Password: MsgPasswordRequired}},

		// Identity
		{"Invalid: EAP empty identity", Settings{SSID: "Corp", Password: "x", EncryptionMode: EncryptionWPA2EAP}, FieldErrors{EAPIdentity: MsgIdentityRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.settings)
			if got != tt.want {
				t.Errorf("Validate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestValidateAtMostOneError checks the gate never reports two fields at once
func TestValidateAtMostOneError(t *testing.T) {
	for _, mode := range EncryptionModes {
		for _, ssid := range []string{"", "Home"} {
			for _, password := range []string{"", "x", "abcde", "12345678"} {
				for _, identity := range []string{"", "alice"} {
					s := Settings{SSID: ssid, Password: password, EncryptionMode: mode, EAPIdentity: identity}
					errs := Validate(s)

					set := 0
					for _, field := range []Field{FieldSSID, FieldPassword, FieldEAPIdentity} {
						if errs.Get(field) != "" {
							set++
						}
					}
					if set > 1 {
						t.Errorf("Validate(%+v) reported %d errors, want at most 1", s, set)
					}
				}
			}
		}
	}
}

// TestValidateErr tests the typed error form of the gate
func TestValidateErr(t *testing.T) {
	err := ValidateErr(Settings{SSID: "Home", Password: "short", EncryptionMode: EncryptionWPA})
	if err == nil {
		t.Fatal("Expected error for short WPA password")
	}
	if err.Type != ErrTypePasswordTooShort {
		t.Errorf("Type = %v, want %v", err.Type, ErrTypePasswordTooShort)
	}
	if err.Min != MinPasswordWPA {
		t.Errorf("Min = %d, want %d", err.Min, MinPasswordWPA)
	}
	if !IsValidationError(err) {
		t.Error("Expected IsValidationError to be true")
	}

	if err := ValidateErr(Settings{SSID: "Home", Password: "12345678", EncryptionMode: EncryptionWPA}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

// TestFieldErrorsMerge tests that merging keeps untouched entries
func TestFieldErrorsMerge(t *testing.T) {
	base := FieldErrors{SSID: MsgSSIDRequired}
	merged := base.Merge(FieldErrors{Password: MsgPasswordLength8})

	want := FieldErrors{SSID: MsgSSIDRequired, Password: MsgPasswordLength8}
	if merged != want {
		t.Errorf("Merge() = %+v, want %+v", merged, want)
	}

	overwritten := merged.Merge(FieldErrors{Password: MsgPasswordLength5})
	if overwritten.Password != MsgPasswordLength5 {
		t.Errorf("Password = %q, want %q", overwritten.Password, MsgPasswordLength5)
	}
	if overwritten.SSID != MsgSSIDRequired {
		t.Errorf("SSID = %q, want %q", overwritten.SSID, MsgSSIDRequired)
	}
}

type upperLocalizer struct{}

func (upperLocalizer) Lookup(lang, key string) string {
	return lang + ":" + strings.ToUpper(key)
}

// TestFieldErrorsLocalize tests key resolution through a Localizer
func TestFieldErrorsLocalize(t *testing.T) {
	errs := FieldErrors{SSID: MsgSSIDRequired, EAPIdentity: MsgIdentityRequired}
	got := errs.Localize(upperLocalizer{}, "fr-FR")

	if len(got) != 2 {
		t.Fatalf("Localize() returned %d entries, want 2", len(got))
	}
	if got[FieldSSID] != "fr-FR:WIFI.ALERT.NAME" {
		t.Errorf("SSID = %q", got[FieldSSID])
	}
	if got[FieldEAPIdentity] != "fr-FR:WIFI.ALERT.EAPIDENTITY" {
		t.Errorf("EAPIdentity = %q", got[FieldEAPIdentity])
	}
	if _, ok := got[FieldPassword]; ok {
		t.Error("Password should not be present")
	}
}
