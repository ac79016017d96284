package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackie264/wificard/internal/card"
	"github.com/jackie264/wificard/internal/i18n"
	"github.com/jackie264/wificard/internal/logging"
	"github.com/jackie264/wificard/internal/qr"
	"github.com/jackie264/wificard/internal/wifi"
)

// formField identifies one row of the form, in display order
type formField int

const (
	fieldLanguage formField = iota
	fieldSSID
	fieldHiddenSSID
	fieldEncryption
	fieldEAPMethod
	fieldEAPIdentity
	fieldPassword
	fieldHidePassword
	fieldPortrait
	fieldHideTip
	fieldSVG
	fieldAdditionalCards
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindToggle
	kindChoice
)

func (f formField) kind() fieldKind {
	switch f {
	case fieldSSID, fieldEAPIdentity, fieldPassword, fieldAdditionalCards:
		return kindText
	case fieldLanguage, fieldEncryption, fieldEAPMethod:
		return kindChoice
	default:
		return kindToggle
	}
}

// labelKey returns the message key of the row label
func (f formField) labelKey() string {
	switch f {
	case fieldLanguage:
		return "select"
	case fieldSSID:
		return "wifi.name"
	case fieldHiddenSSID:
		return "wifi.name.hiddenSSID"
	case fieldEncryption:
		return "wifi.password.encryption"
	case fieldEAPMethod:
		return "wifi.encryption.eapMethod"
	case fieldEAPIdentity:
		return "wifi.identity"
	case fieldPassword:
		return "wifi.password"
	case fieldHidePassword:
		return "wifi.password.hide"
	case fieldPortrait:
		return "button.rotate"
	case fieldHideTip:
		return "cards.tip.hide"
	case fieldSVG:
		return "button.svg"
	case fieldAdditionalCards:
		return "cards.additional"
	}
	return ""
}

// errorField maps a row to the validation field it reports, if any
func (f formField) errorField() wifi.Field {
	switch f {
	case fieldSSID:
		return wifi.FieldSSID
	case fieldPassword:
		return wifi.FieldPassword
	case fieldEAPIdentity:
		return wifi.FieldEAPIdentity
	}
	return ""
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Rotate key.Binding
	Print  key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Print, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Toggle, k.Rotate, k.Print, k.Save},
		{k.Help, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("space", "toggle"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rotate"),
		),
		Print: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "print"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save image"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Messages
type printRequestedMsg struct {
	job wifi.PrintJob
}

type imageSavedMsg struct {
	path string
	err  error
}

// FormModel edits one card. It owns a wifi.Editor and mirrors the text
// fields into bubbles text inputs; every change goes through the editor's
// setters so the live preview always reflects the editor state.
type FormModel struct {
	editor   *wifi.Editor
	lang     string
	loc      wifi.Localizer
	exporter *qr.Exporter

	ssidInput     textinput.Model
	passwordInput textinput.Model
	identityInput textinput.Model
	cardsInput    textinput.Model

	focus formField

	status    string
	statusErr bool
	saving    bool

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the form from the initial options
func NewFormModel(opts Options) FormModel {
	opts = opts.withDefaults()
	editor := wifi.NewEditor(opts.Settings)
	s := editor.Settings()

	ssidInput := textinput.New()
	ssidInput.CharLimit = wifi.MaxSSIDLength
	ssidInput.Width = 32
	ssidInput.SetValue(s.SSID)

	passwordInput := textinput.New()
	passwordInput.CharLimit = wifi.MaxPasswordLength
	passwordInput.Width = 32
	passwordInput.SetValue(s.Password)

	identityInput := textinput.New()
	identityInput.CharLimit = 64
	identityInput.Width = 32
	identityInput.SetValue(s.EAPIdentity)

	cardsInput := textinput.New()
	cardsInput.CharLimit = 3
	cardsInput.Width = 4
	cardsInput.SetValue(strconv.Itoa(s.AdditionalCards))

	m := FormModel{
		editor:        editor,
		lang:          i18n.Resolve(opts.Lang),
		loc:           opts.Localizer,
		exporter:      opts.Exporter,
		ssidInput:     ssidInput,
		passwordInput: passwordInput,
		identityInput: identityInput,
		cardsInput:    cardsInput,
		focus:         fieldSSID,
		Help:          help.New(),
		Keys:          newFormKeyMap(),
	}
	m.applyLanguage()
	m.syncFocus()
	return m
}

// Init starts the cursor blink
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Settings returns the current card settings
func (m FormModel) Settings() wifi.Settings {
	return m.editor.Settings()
}

// Errors returns the current field errors
func (m FormModel) Errors() wifi.FieldErrors {
	return m.editor.Errors()
}

// Language returns the active language
func (m FormModel) Language() string {
	return m.lang
}

// Update handles messages for the form
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.editor.ApplyInitialLayout(msg.Width < NarrowWidth)
		return m, nil

	case imageSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("%s: %v", m.t("button.saveImage"), msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("%s: %s", m.t("button.saveImage"), msg.path), false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input messages go to the focused input
	if in := m.input(m.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Print):
		return m.print()
	case key.Matches(msg, m.Keys.Save):
		return m.save()
	case key.Matches(msg, m.Keys.Rotate):
		m.editor.SetPortrait(!m.editor.Settings().Portrait)
		m.payloadChanged()
		return m, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	case key.Matches(msg, m.Keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.Keys.Prev):
		return m, m.moveFocus(-1)
	}

	switch m.focus.kind() {
	case kindChoice:
		switch {
		case key.Matches(msg, m.Keys.Left):
			m.cycle(-1)
		case key.Matches(msg, m.Keys.Right), key.Matches(msg, m.Keys.Toggle):
			m.cycle(1)
		}
		return m, nil

	case kindToggle:
		if key.Matches(msg, m.Keys.Toggle, m.Keys.Left, m.Keys.Right) {
			m.toggle()
		}
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards a key to the focused text input and pushes a changed
// value into the editor. Setters run only on a real change so moving the
// cursor does not clear a field's error.
func (m FormModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.input(m.focus)
	if in == nil {
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	value := in.Value()
	s := m.editor.Settings()

	switch m.focus {
	case fieldSSID:
		if value == s.SSID {
			return m, cmd
		}
		m.editor.SetSSID(value)
	case fieldPassword:
		if value == s.Password {
			return m, cmd
		}
		m.editor.SetPassword(value)
	case fieldEAPIdentity:
		if value == s.EAPIdentity {
			return m, cmd
		}
		m.editor.SetEAPIdentity(value)
	case fieldAdditionalCards:
		if !m.editor.SetAdditionalCardsText(value) {
			return m, cmd
		}
	}

	m.payloadChanged()
	return m, cmd
}

// cycle steps the focused choice field
func (m *FormModel) cycle(delta int) {
	s := m.editor.Settings()

	switch m.focus {
	case fieldLanguage:
		if delta > 0 {
			m.lang = i18n.Next(m.lang)
		} else {
			m.lang = i18n.Prev(m.lang)
		}
		m.applyLanguage()
		return

	case fieldEncryption:
		mode := wifi.EncryptionModes[step(indexOf(wifi.EncryptionModes, s.EncryptionMode), delta, len(wifi.EncryptionModes))]
		m.editor.SetEncryptionMode(mode)
		if mode == wifi.EncryptionNone {
			m.passwordInput.SetValue("")
		}

	case fieldEAPMethod:
		method := wifi.EAPMethods[step(indexOf(wifi.EAPMethods, s.EAPMethod), delta, len(wifi.EAPMethods))]
		m.editor.SetEAPMethod(method)
	}

	m.payloadChanged()
}

// toggle flips the focused boolean field
func (m *FormModel) toggle() {
	s := m.editor.Settings()

	switch m.focus {
	case fieldHiddenSSID:
		m.editor.SetHiddenSSID(!s.HiddenSSID)
	case fieldHidePassword:
		m.editor.SetHidePassword(!s.HidePassword)
	case fieldPortrait:
		m.editor.SetPortrait(!s.Portrait)
	case fieldHideTip:
		m.editor.SetHideTip(!s.HideTip)
	case fieldSVG:
		m.editor.SetSVGImage(!s.SVGImage)
	default:
		return
	}
	m.payloadChanged()
}

// print runs the validation gate. On success the print request is handed to
// the app model; on failure focus moves to the first field in error.
func (m FormModel) print() (tea.Model, tea.Cmd) {
	job, ok := m.editor.Print()
	if !ok {
		errs := m.editor.Errors()
		for _, f := range []wifi.Field{wifi.FieldSSID, wifi.FieldPassword, wifi.FieldEAPIdentity} {
			if k := errs.Get(f); k != "" {
				logging.LogValidation(string(f), string(k))
			}
		}
		m.setStatus("", false)
		return m, m.focusFirstError()
	}

	logging.LogValidation("", "")
	return m, func() tea.Msg {
		return printRequestedMsg{job: job}
	}
}

// save exports the QR code in the format picked by the SVG toggle. Saving is
// not gated by validation.
func (m FormModel) save() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true

	s := m.editor.Settings()
	payload := m.editor.Payload()
	format := qr.FormatFor(s.SVGImage)
	exporter := m.exporter

	m.setStatus(m.t("button.saveImage")+"...", false)
	return m, func() tea.Msg {
		path, err := exporter.Export(context.Background(), payload, s.SSID, format)
		return imageSavedMsg{path: path, err: err}
	}
}

func (m FormModel) payloadChanged() {
	s := m.editor.Settings()
	logging.LogPayloadBuilt(s.SSID, string(s.EncryptionMode), utf8.RuneCountInString(s.Password), len(m.editor.Payload()))
}

// visibleFields lists the rows shown for the current settings
func (m FormModel) visibleFields() []formField {
	s := m.editor.Settings()

	fields := []formField{fieldLanguage, fieldSSID, fieldHiddenSSID, fieldEncryption}
	if s.IsEnterprise() {
		fields = append(fields, fieldEAPMethod, fieldEAPIdentity)
	}
	if s.EncryptionMode != wifi.EncryptionNone {
		fields = append(fields, fieldPassword, fieldHidePassword)
	}
	return append(fields, fieldPortrait, fieldHideTip, fieldSVG, fieldAdditionalCards)
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	fields := m.visibleFields()
	m.focus = fields[step(indexOf(fields, m.focus), delta, len(fields))]
	return m.syncFocus()
}

func (m *FormModel) focusFirstError() tea.Cmd {
	errs := m.editor.Errors()
	for _, f := range m.visibleFields() {
		if ef := f.errorField(); ef != "" && errs.Get(ef) != "" {
			m.focus = f
			return m.syncFocus()
		}
	}
	return nil
}

// syncFocus focuses the input of the current row and blurs the others
func (m *FormModel) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for _, f := range []formField{fieldSSID, fieldPassword, fieldEAPIdentity, fieldAdditionalCards} {
		in := m.input(f)
		if f == m.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *FormModel) input(f formField) *textinput.Model {
	switch f {
	case fieldSSID:
		return &m.ssidInput
	case fieldPassword:
		return &m.passwordInput
	case fieldEAPIdentity:
		return &m.identityInput
	case fieldAdditionalCards:
		return &m.cardsInput
	}
	return nil
}

// applyLanguage refreshes the localized placeholders
func (m *FormModel) applyLanguage() {
	m.ssidInput.Placeholder = m.t("wifi.name.placeholder")
	m.passwordInput.Placeholder = m.t("wifi.password.placeholder")
	m.identityInput.Placeholder = m.t("wifi.identity.placeholder")
}

func (m *FormModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m FormModel) t(key string) string {
	return m.loc.Lookup(m.lang, key)
}

// View renders the form screen
func (m FormModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

// buildContent places the form next to the live card preview, or above it on
// a narrow terminal
func (m FormModel) buildContent() string {
	form := m.renderForm()

	preview, err := card.Render(m.editor.Settings(), card.Options{
		Lang:       m.lang,
		Localizer:  m.loc,
		Errors:     m.editor.Errors(),
		ShowErrors: true,
	})
	if err != nil {
		preview = StatusErrorStyle.Render(err.Error())
	}

	if m.Width > 0 && m.Width < NarrowWidth {
		return lipgloss.JoinVertical(lipgloss.Left, form, "", preview)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", preview)
}

func (m FormModel) renderForm() string {
	var b strings.Builder

	b.WriteString(RenderTitle(m.t("title")))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Width(FormWidth).Render(m.t("desc.use")))
	b.WriteString("\n\n")

	for _, f := range m.visibleFields() {
		b.WriteString(m.renderField(f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(PrivacyStyle.Render(m.t("desc.privacy")))

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(StatusErrorStyle.Render(m.status))
		} else {
			b.WriteString(StatusSuccessStyle.Render(m.status))
		}
	}

	return lipgloss.NewStyle().Width(FormWidth).Render(b.String())
}

func (m FormModel) renderField(f formField) string {
	focused := f == m.focus
	label := m.t(f.labelKey())
	if ef := f.errorField(); ef != "" && m.editor.Errors().Get(ef) != "" {
		label += " " + FieldErrorStyle.UnsetPaddingLeft().Render("!")
	}
	s := m.editor.Settings()

	switch f.kind() {
	case kindToggle:
		return RenderCheckbox(m.toggleValue(f, s)) + " " + RenderLabel(label, focused)

	case kindChoice:
		return RenderLabel(label, focused) + "\n    " + RenderChoice(m.choiceValue(f, s), focused)

	default:
		in := m.input(f)
		return RenderLabel(label, focused) + "\n  " + in.View()
	}
}

func (m FormModel) toggleValue(f formField, s wifi.Settings) bool {
	switch f {
	case fieldHiddenSSID:
		return s.HiddenSSID
	case fieldHidePassword:
		return s.HidePassword
	case fieldPortrait:
		return s.Portrait
	case fieldHideTip:
		return s.HideTip
	case fieldSVG:
		return s.SVGImage
	}
	return false
}

func (m FormModel) choiceValue(f formField, s wifi.Settings) string {
	switch f {
	case fieldLanguage:
		return i18n.TranslationFor(m.lang).Name
	case fieldEncryption:
		if s.EncryptionMode == wifi.EncryptionNone {
			return m.t("wifi.password.encryption.none")
		}
		return s.EncryptionMode.Label()
	case fieldEAPMethod:
		return string(s.EAPMethod)
	}
	return ""
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

// step moves i by delta within n items, wrapping at both ends
func step(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
