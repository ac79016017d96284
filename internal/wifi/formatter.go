package wifi

import (
	"fmt"
	"strings"
)

const maskedPassword = "********"

// Summary returns a one-line summary of the settings
func (s Settings) Summary() string {
	hidden := ""
	if s.HiddenSSID {
		hidden = ", hidden"
	}
	return fmt.Sprintf("%q (%s%s)", s.SSID, s.EncryptionMode.Label(), hidden)
}

// FormatNetwork returns a formatted string with the network fields.
// The password is masked unless revealPassword is set.
func (s Settings) FormatNetwork(revealPassword bool) string {
	var b strings.Builder

	b.WriteString("=== Network ===\n")
	b.WriteString(fmt.Sprintf("SSID:        %s\n", s.SSID))
	b.WriteString(fmt.Sprintf("Encryption:  %s\n", s.EncryptionMode.Label()))
	if s.IsEnterprise() {
		b.WriteString(fmt.Sprintf("EAP Method:  %s\n", s.EAPMethod))
		b.WriteString(fmt.Sprintf("Identity:    %s\n", s.EAPIdentity))
	}
	if s.EncryptionMode != EncryptionNone {
		password := maskedPassword
		if revealPassword {
			password = s.Password
		}
		b.WriteString(fmt.Sprintf("Password:    %s\n", password))
	}
	b.WriteString(fmt.Sprintf("Hidden SSID: %v\n", s.HiddenSSID))

	return b.String()
}

// FormatDisplay returns a formatted string with the card display preferences
func (s Settings) FormatDisplay() string {
	var b strings.Builder

	orientation := "landscape"
	if s.Portrait {
		orientation = "portrait"
	}
	image := "PNG (raster)"
	if s.SVGImage {
		image = "SVG (vector)"
	}

	b.WriteString("=== Card ===\n")
	b.WriteString(fmt.Sprintf("Orientation:   %s\n", orientation))
	b.WriteString(fmt.Sprintf("Hide password: %v\n", s.HidePassword))
	b.WriteString(fmt.Sprintf("Hide tip:      %v\n", s.HideTip))
	b.WriteString(fmt.Sprintf("Copies:        %d\n", s.Copies()))
	b.WriteString(fmt.Sprintf("Image format:  %s\n", image))

	return b.String()
}

// FormatDetailed returns the network and display sections together
func (s Settings) FormatDetailed(revealPassword bool) string {
	var b strings.Builder

	b.WriteString(s.FormatNetwork(revealPassword))
	b.WriteString("\n")
	b.WriteString(s.FormatDisplay())

	return b.String()
}
