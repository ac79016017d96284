package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackie264/wificard/internal/card"
	"github.com/jackie264/wificard/internal/i18n"
	"github.com/jackie264/wificard/internal/logging"
	"github.com/jackie264/wificard/internal/qr"
	"github.com/jackie264/wificard/internal/wifi"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenForm  Screen = "form"
	ScreenSheet Screen = "sheet"
)

// Options seeds the wizard
type Options struct {
	Settings  wifi.Settings
	Lang      string
	Localizer wifi.Localizer // i18n.Default() when nil
	Exporter  *qr.Exporter   // current directory at qr.DefaultSize when nil
}

func (o Options) withDefaults() Options {
	if o.Localizer == nil {
		o.Localizer = i18n.Default()
	}
	if o.Exporter == nil {
		o.Exporter = qr.NewExporter(".", qr.DefaultSize)
	}
	return o
}

// sheetKeyMap defines key bindings for the print sheet screen
type sheetKeyMap struct {
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k sheetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k sheetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Back, k.Quit},
	}
}

// AppModel is the top-level model: the form, and the print sheet shown once
// the form passes validation
type AppModel struct {
	CurrentScreen Screen

	Form FormModel

	// Print state
	job     *wifi.PrintJob
	sheet   string
	printed bool

	// UI state
	Width  int
	Height int

	Help      help.Model
	SheetKeys sheetKeyMap
}

// NewAppModel creates the application model starting on the form
func NewAppModel(opts Options) AppModel {
	sheetKeys := sheetKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "print"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back to form"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return AppModel{
		CurrentScreen: ScreenForm,
		Form:          NewFormModel(opts),
		Help:          help.New(),
		SheetKeys:     sheetKeys,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.Form.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.updateForm(msg)

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case printRequestedMsg:
		return m.showSheet(msg.job)
	}

	switch m.CurrentScreen {
	case ScreenSheet:
		return m.handleSheetScreen(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m AppModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.Form.Update(msg)
	m.Form = updated.(FormModel)
	return m, cmd
}

// showSheet renders the print sheet for an approved job
func (m AppModel) showSheet(job wifi.PrintJob) (tea.Model, tea.Cmd) {
	sheet, err := card.RenderSheet(job, m.Form.Language(), m.Form.loc)
	if err != nil {
		m.Form.setStatus(err.Error(), true)
		return m, nil
	}

	m.job = &job
	m.sheet = sheet
	m.CurrentScreen = ScreenSheet
	return m, nil
}

// handleSheetScreen handles user input on the print sheet screen
func (m AppModel) handleSheetScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.SheetKeys.Confirm):
		m.printed = true
		logging.LogPrint(m.job.Title, m.job.Copies)
		return m, tea.Quit

	case key.Matches(keyMsg, m.SheetKeys.Back):
		m.CurrentScreen = ScreenForm
		m.job = nil
		m.sheet = ""
		return m, nil

	case key.Matches(keyMsg, m.SheetKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// PrintJob returns the job the user confirmed on the sheet screen
func (m AppModel) PrintJob() (wifi.PrintJob, bool) {
	if !m.printed || m.job == nil {
		return wifi.PrintJob{}, false
	}
	return *m.job, true
}

// Sheet returns the rendered print sheet, empty until a job is approved
func (m AppModel) Sheet() string {
	return m.sheet
}

// Settings returns the settings as last edited
func (m AppModel) Settings() wifi.Settings {
	return m.Form.Settings()
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenSheet:
		return RenderApplicationContainer(m.buildSheetContent(), m.Help.View(m.SheetKeys), m.Width, m.Height)
	default:
		return m.Form.View()
	}
}

func (m AppModel) buildSheetContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle(m.Form.t("button.print")))
	b.WriteString("\n")
	b.WriteString(m.sheet)

	return b.String()
}
