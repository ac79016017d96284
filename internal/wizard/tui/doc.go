// Package tui implements the interactive card editor for wificard.
//
// The wizard is a Bubble Tea program with two screens:
//
//  1. Form: every card setting as a form row, with the live card preview
//     (QR code, labels, inline validation messages) beside it. Text rows use
//     bubbles/textinput; toggles and choices are driven from the keyboard.
//  2. Sheet: the print sheet for a job that passed validation. Confirming
//     quits the program; the caller writes the sheet to stdout.
//
// Both screens use RenderApplicationContainer for the header, content and
// context-sensitive footer (bubbles/help).
//
// # Usage Example
//
//	app := tui.NewAppModel(tui.Options{Settings: cfg.Settings, Lang: cfg.Language})
//	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
//	if err != nil {
//	    return err
//	}
//	if _, ok := final.(tui.AppModel).PrintJob(); ok {
//	    fmt.Print(final.(tui.AppModel).Sheet())
//	}
//
// # Keys
//
//	tab / shift+tab   move between rows
//	← / →             change language, encryption or EAP method
//	space             flip a checkbox
//	ctrl+r            rotate the card
//	ctrl+p            validate and show the print sheet
//	ctrl+s            save the QR code image (SVG or PNG)
//	esc               quit
//
// On the first window size message the card switches to portrait when the
// terminal is narrower than NarrowWidth columns.
package tui
