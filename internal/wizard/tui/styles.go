package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jackie264/wificard/internal/urls"
	"github.com/jackie264/wificard/internal/version"
)

// Application branding constants
const (
	AppName   = "WIFI CARD"
	GitHubURL = urls.Source
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60
	// NarrowWidth is the width below which the card starts in portrait and
	// the preview is stacked under the form.
	NarrowWidth = 90
	FormWidth   = 44
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Form row label, unfocused
	LabelStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Form row label, focused
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	ChoiceStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(4)

	StatusSuccessStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	PrivacyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true).
			Width(FormWidth)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderLabel renders a form label with a focus indicator
func RenderLabel(text string, focused bool) string {
	if focused {
		return FocusedLabelStyle.Render("→ " + text)
	}
	return LabelStyle.Render(text)
}

// RenderCheckbox renders a boolean form value
func RenderCheckbox(checked bool) string {
	if checked {
		return ChoiceStyle.Render("[x]")
	}
	return ChoiceStyle.Render("[ ]")
}

// RenderChoice renders a cyclable value between arrows
func RenderChoice(value string, focused bool) string {
	if focused {
		return ChoiceStyle.Render("‹ " + value + " ›")
	}
	return ChoiceStyle.Render(value)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps every screen in the same full-screen panel:
// header (name, version, URL), the screen content, and a footer with
// context-sensitive help, inside a bordered box sized to the terminal.
//
//	func (m Model) View() string {
//	    return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
//	}
//
// Before the first tea.WindowSizeMsg the width is unknown; MinTerminalWidth
// is used instead.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top)
	if terminalHeight > 2 {
		borderStyle = borderStyle.Height(terminalHeight - 2)
	}

	bordered := borderStyle.Render(innerContent)
	if terminalHeight <= 0 {
		return bordered
	}

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
