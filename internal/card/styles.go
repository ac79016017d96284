package card

import "github.com/charmbracelet/lipgloss"

// cutBorder is a dashed border marking where to cut the printed card.
var cutBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

var (
	CardStyle = lipgloss.NewStyle().
			Border(cutBorder).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	SheetTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	// QRStyle forces dark modules on a light ground so the code scans on
	// any terminal theme.
	QRStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#FFFFFF"))

	LabelStyle = lipgloss.NewStyle().
			Faint(true)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	TipStyle = lipgloss.NewStyle().
			Italic(true).
			Faint(true)
)
