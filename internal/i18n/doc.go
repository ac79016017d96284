// Package i18n localizes the text shown on the card and in the form.
//
// Messages live in flat YAML files under locales/, one per language, compiled
// into the binary. A Catalog satisfies wifi.Localizer, so validation message
// keys are turned into text only when they are displayed:
//
//	cat := i18n.Default()
//	text := cat.Lookup("fr-FR", "wifi.alert.name")
//
// Requested languages are matched with golang.org/x/text/language, so "de"
// or "fr-CA" pick the closest bundled locale. Direction reports whether a
// language is written right to left.
package i18n
