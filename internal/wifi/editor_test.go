package wifi

import (
	"testing"
)

func TestNewEditor(t *testing.T) {
	t.Run("Fills defaults", func(t *testing.T) {
		e := NewEditor(Settings{SSID: "Home"})
		s := e.Settings()
		if s.EncryptionMode != EncryptionWPA {
			t.Errorf("EncryptionMode = %q, want %q", s.EncryptionMode, EncryptionWPA)
		}
		if s.EAPMethod != EAPMethodPWD {
			t.Errorf("EAPMethod = %q, want %q", s.EAPMethod, EAPMethodPWD)
		}
		if !e.Errors().Empty() {
			t.Errorf("Errors() = %+v, want empty", e.Errors())
		}
	})

	t.Run("Open network drops password", func(t *testing.T) {
		e := NewEditor(Settings{SSID: "Cafe", Password: "leftover", EncryptionMode: EncryptionNone})
		if got := e.Settings().Password; got != "" {
			t.Errorf("Password = %q, want empty", got)
		}
	})

	t.Run("Negative additional cards clamped", func(t *testing.T) {
		e := NewEditor(Settings{SSID: "Home", AdditionalCards: -3})
		if got := e.Settings().AdditionalCards; got != 0 {
			t.Errorf("AdditionalCards = %d, want 0", got)
		}
	})
}

// TestSetEncryptionModeNoneClearsPassword covers the one cross-field update
func TestSetEncryptionModeNoneClearsPassword(t *testing.T) {
	e := NewEditor(Settings{SSID: "Home", Password: "secret123", EncryptionMode: EncryptionWPA})

	e.SetEncryptionMode(EncryptionNone)
	if got := e.Settings().Password; got != "" {
		t.Errorf("Password after None = %q, want empty", got)
	}
	if got := e.Payload(); got != "WIFI:S:Home;T:nopass;;" {
		t.Errorf("Payload() = %q", got)
	}

	e.SetEncryptionMode(EncryptionWPA)
	if got := e.Settings().Password; got != "" {
		t.Errorf("Password after switching back = %q, want empty", got)
	}
}

func TestSetEncryptionModeKeepsPassword(t *testing.T) {
	e := NewEditor(Settings{SSID: "Home", Password: "secret123", EncryptionMode: EncryptionWPA})

	for _, mode := range []EncryptionMode{EncryptionWEP, EncryptionWPA2EAP, EncryptionWPA} {
		e.SetEncryptionMode(mode)
		if got := e.Settings().Password; got != "secret123" {
			t.Errorf("Password after %s = %q, want %q", mode, got, "secret123")
		}
	}
}

// TestEditorErrorClearing tests that each setter clears only its own error
func TestEditorErrorClearing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Editor)
		want   FieldErrors
	}{
		{
			name:   "SetSSID clears SSID",
			mutate: func(e *Editor) { e.SetSSID("Home") },
			want:   FieldErrors{Password: MsgPasswordLength8, EAPIdentity: MsgIdentityRequired},
		},
		{
			name:   "SetPassword clears password",
			mutate: func(e *Editor) { e.SetPassword("12345678") },
			want:   FieldErrors{SSID: MsgSSIDRequired, EAPIdentity: MsgIdentityRequired},
		},
		{
			name:   "SetEncryptionMode clears password",
			mutate: func(e *Editor) { e.SetEncryptionMode(EncryptionWEP) },
			want:   FieldErrors{SSID: MsgSSIDRequired, EAPIdentity: MsgIdentityRequired},
		},
		{
			name:   "SetEAPIdentity clears identity",
			mutate: func(e *Editor) { e.SetEAPIdentity("alice") },
			want:   FieldErrors{SSID: MsgSSIDRequired, Password: MsgPasswordLength8},
		},
		{
			name:   "SetHideTip clears nothing",
			mutate: func(e *Editor) { e.SetHideTip(true) },
			want:   FieldErrors{SSID: MsgSSIDRequired, Password: MsgPasswordLength8, EAPIdentity: MsgIdentityRequired},
		},
		{
			name:   "SetSSID to empty still clears",
			mutate: func(e *Editor) { e.SetSSID("") },
			want:   FieldErrors{Password: MsgPasswordLength8, EAPIdentity: MsgIdentityRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditor(DefaultSettings())
			e.errors = FieldErrors{
				SSID:        MsgSSIDRequired,
				Password:    MsgPasswordLength8,
				EAPIdentity: MsgIdentityRequired,
			}

			tt.mutate(e)

			if got := e.Errors(); got != tt.want {
				t.Errorf("Errors() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEditorPrint(t *testing.T) {
	t.Run("Short WPA password rejected", func(t *testing.T) {
		e := NewEditor(Settings{SSID: "Home", Password: "short", EncryptionMode: EncryptionWPA})

		job, ok := e.Print()
		if ok {
			t.Fatalf("Print() ok = true, job = %+v", job)
		}
		want := FieldErrors{Password: MsgPasswordLength8}
		if got := e.Errors(); got != want {
			t.Errorf("Errors() = %+v, want %+v", got, want)
		}
	})

	t.Run("Valid settings produce a job", func(t *testing.T) {
		e := NewEditor(Settings{SSID: "Home", Password: "12345678", EncryptionMode: EncryptionWPA, AdditionalCards: 2})

		job, ok := e.Print()
		if !ok {
			t.Fatalf("Print() ok = false, errors = %+v", e.Errors())
		}
		if job.Title != "WiFi Card - Home" {
			t.Errorf("Title = %q", job.Title)
		}
		if job.Copies != 3 {
			t.Errorf("Copies = %d, want 3", job.Copies)
		}
		if job.Settings.SSID != "Home" {
			t.Errorf("Settings.SSID = %q", job.Settings.SSID)
		}
	})

	t.Run("Failure merges with earlier errors", func(t *testing.T) {
		e := NewEditor(Settings{SSID: "Home", Password: "short", EncryptionMode: EncryptionWPA})
		e.errors = FieldErrors{EAPIdentity: MsgIdentityRequired}

		if _, ok := e.Print(); ok {
			t.Fatal("Print() ok = true")
		}
		want := FieldErrors{Password: MsgPasswordLength8, EAPIdentity: MsgIdentityRequired}
		if got := e.Errors(); got != want {
			t.Errorf("Errors() = %+v, want %+v", got, want)
		}
	})

	t.Run("Fixing the field then printing succeeds", func(t *testing.T) {
		e := NewEditor(Settings{EncryptionMode: EncryptionWPA})
		if _, ok := e.Print(); ok {
			t.Fatal("Print() ok = true with empty SSID")
		}
		e.SetSSID("Home")
		if _, ok := e.Print(); ok {
			t.Fatal("Print() ok = true with empty password")
		}
		if got := e.Errors().Password; got != MsgPasswordLength8 {
			t.Errorf("Password error = %q", got)
		}
		e.SetPassword("12345678")
		if _, ok := e.Print(); !ok {
			t.Errorf("Print() ok = false, errors = %+v", e.Errors())
		}
	})
}

func TestApplyInitialLayout(t *testing.T) {
	t.Run("Narrow switches to portrait once", func(t *testing.T) {
		e := NewEditor(DefaultSettings())
		e.ApplyInitialLayout(true)
		if !e.Settings().Portrait {
			t.Fatal("Portrait = false after narrow layout")
		}

		e.SetPortrait(false)
		e.ApplyInitialLayout(true)
		if e.Settings().Portrait {
			t.Error("Second ApplyInitialLayout overrode the user's choice")
		}
	})

	t.Run("Wide leaves orientation", func(t *testing.T) {
		e := NewEditor(DefaultSettings())
		e.ApplyInitialLayout(false)
		if e.Settings().Portrait {
			t.Error("Portrait = true after wide layout")
		}

		e.ApplyInitialLayout(true)
		if e.Settings().Portrait {
			t.Error("Later narrow call should be ignored")
		}
	})
}

func TestSetAdditionalCards(t *testing.T) {
	e := NewEditor(DefaultSettings())

	e.SetAdditionalCards(4)
	if got := e.Settings().AdditionalCards; got != 4 {
		t.Errorf("AdditionalCards = %d, want 4", got)
	}
	e.SetAdditionalCards(-1)
	if got := e.Settings().AdditionalCards; got != 4 {
		t.Errorf("AdditionalCards after negative = %d, want 4", got)
	}
}

func TestSetAdditionalCardsText(t *testing.T) {
	tests := []struct {
		text   string
		wantOK bool
		want   int
	}{
		{"3", true, 3},
		{" 2 ", true, 2},
		{"0", true, 0},
		{"", false, 1},
		{"-2", false, 1},
		{"two", false, 1},
		{"1.5", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			e := NewEditor(Settings{SSID: "Home", AdditionalCards: 1})
			ok := e.SetAdditionalCardsText(tt.text)
			if ok != tt.wantOK {
				t.Errorf("SetAdditionalCardsText(%q) = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got := e.Settings().AdditionalCards; got != tt.want {
				t.Errorf("AdditionalCards = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestPayloadNotGated checks the payload tracks edits even while errors exist
func TestPayloadNotGated(t *testing.T) {
	e := NewEditor(DefaultSettings())
	e.Print()

	e.SetSSID("Home;Net")
	e.SetPassword("p@ss:1,2")
	e.SetHiddenSSID(true)

	want := `WIFI:S:Home\;Net;T:WPA;P:p@ss\:1\,2;H:true;;`
	if got := e.Payload(); got != want {
		t.Errorf("Payload() = %q, want %q", got, want)
	}
}
