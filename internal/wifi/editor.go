package wifi

import (
	"strconv"
	"strings"
)

// PrintTitlePrefix is prepended to the SSID to form the print document title.
const PrintTitlePrefix = "WiFi Card - "

// PrintJob describes an approved print run.
type PrintJob struct {
	Title    string   // Document title, e.g. "WiFi Card - Home"
	Settings Settings // Snapshot of the settings being printed
	Copies   int      // Number of cards on the sheet (AdditionalCards + 1)
}

// Editor owns one Settings record and its FieldErrors.
//
// Every mutation is a single named field update. Only SetEncryptionMode
// touches more than one field: switching to None clears the password in the
// same update. No mutation validates; validation runs only in Print.
//
// Editor is a value type owned by a single view; it is not safe for
// concurrent use.
type Editor struct {
	settings      Settings
	errors        FieldErrors
	layoutApplied bool
}

// NewEditor creates an editor starting from initial. The None ⇒ empty
// password rule is applied to the initial record as well.
func NewEditor(initial Settings) *Editor {
	e := &Editor{settings: initial}
	if e.settings.EncryptionMode == "" {
		e.settings.EncryptionMode = EncryptionWPA
	}
	if e.settings.EAPMethod == "" {
		e.settings.EAPMethod = EAPMethodPWD
	}
	if e.settings.EncryptionMode == EncryptionNone {
		e.settings.Password = ""
	}
	if e.settings.AdditionalCards < 0 {
		e.settings.AdditionalCards = 0
	}
	return e
}

// Settings returns a copy of the current settings.
func (e *Editor) Settings() Settings {
	return e.settings
}

// Errors returns a copy of the current field errors.
func (e *Editor) Errors() FieldErrors {
	return e.errors
}

// Payload returns the live QR payload. It is never gated by validation.
func (e *Editor) Payload() string {
	return Encode(e.settings)
}

// SetSSID updates the network name and clears its error.
func (e *Editor) SetSSID(ssid string) {
	e.errors.SSID = ""
	e.settings.SSID = ssid
}

// SetPassword updates the password and clears its error.
func (e *Editor) SetPassword(password string) {
	e.errors.Password = ""
	e.settings.Password = password
}

// SetEncryptionMode changes the mode and clears the password error.
// Switching to None also clears the password; switching back does not
// restore it.
func (e *Editor) SetEncryptionMode(mode EncryptionMode) {
	e.errors.Password = ""
	e.settings.EncryptionMode = mode
	if mode == EncryptionNone {
		e.settings.Password = ""
	}
}

// SetEAPMethod updates the EAP method.
func (e *Editor) SetEAPMethod(method EAPMethod) {
	e.settings.EAPMethod = method
}

// SetEAPIdentity updates the EAP identity and clears its error.
func (e *Editor) SetEAPIdentity(identity string) {
	e.errors.EAPIdentity = ""
	e.settings.EAPIdentity = identity
}

// SetHidePassword toggles the password row on the card.
func (e *Editor) SetHidePassword(hide bool) {
	e.settings.HidePassword = hide
}

// SetHiddenSSID marks the network as hidden in the payload.
func (e *Editor) SetHiddenSSID(hidden bool) {
	e.settings.HiddenSSID = hidden
}

// SetPortrait switches the card orientation.
func (e *Editor) SetPortrait(portrait bool) {
	e.settings.Portrait = portrait
}

// SetAdditionalCards sets the number of extra printed copies. Negative
// values are ignored.
func (e *Editor) SetAdditionalCards(n int) {
	if n < 0 {
		return
	}
	e.settings.AdditionalCards = n
}

// SetAdditionalCardsText parses a form value for the additional card count.
// Input that is not a non-negative base-10 integer leaves the count unchanged.
// It reports whether the value was accepted.
func (e *Editor) SetAdditionalCardsText(text string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return false
	}
	e.settings.AdditionalCards = n
	return true
}

// SetHideTip toggles the scanning tip on the card.
func (e *Editor) SetHideTip(hide bool) {
	e.settings.HideTip = hide
}

// SetSVGImage selects the vector (true) or raster (false) QR backend.
func (e *Editor) SetSVGImage(svg bool) {
	e.settings.SVGImage = svg
}

// ApplyInitialLayout is the first-load hook for presentation layers: when the
// viewport is narrow the card starts in portrait. Only the first call has any
// effect, later calls are ignored so a user's choice is never overridden.
func (e *Editor) ApplyInitialLayout(narrow bool) {
	if e.layoutApplied {
		return
	}
	e.layoutApplied = true
	if narrow {
		e.settings.Portrait = true
	}
}

// Print runs the validation gate. On failure the failing field's error is
// recorded (other errors are left as they are) and ok is false. On success
// it returns the job to hand to the printer.
func (e *Editor) Print() (job PrintJob, ok bool) {
	errs := Validate(e.settings)
	if !errs.Empty() {
		e.errors = e.errors.Merge(errs)
		return PrintJob{}, false
	}

	return PrintJob{
		Title:    PrintTitlePrefix + e.settings.SSID,
		Settings: e.settings,
		Copies:   e.settings.Copies(),
	}, true
}
