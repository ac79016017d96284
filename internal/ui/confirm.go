package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints a warning line followed by a yes/no prompt and reads the
// answer from in. Only "y" or "yes" (any case) confirms; EOF or a read error
// counts as no.
func Confirm(in io.Reader, out io.Writer, warning, question string) bool {
	warningStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)

	if warning != "" {
		fmt.Fprintln(out, warningStyle.Render("  "+WarningMarker+"  "+warning))
	}
	fmt.Fprint(out, warningStyle.Render(question+" [y/N]: "))

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Fprintln(out, cancelStyle.Render("  Operation cancelled."))
	return false
}

// ConfirmOverwrite asks before replacing an existing file
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	return Confirm(in, out, fmt.Sprintf("%s already exists", path), "Overwrite it?")
}
