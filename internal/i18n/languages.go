package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Translation describes one selectable language.
type Translation struct {
	ID   string // BCP 47 tag, also the locale file name
	Name string // Native name shown in the language picker
	RTL  bool   // Written right to left
}

// Translations lists the selectable languages. The first entry is the
// fallback.
var Translations = []Translation{
	{ID: "en-US", Name: "English"},
	{ID: "zh-CN", Name: "简体中文"},
	{ID: "de-DE", Name: "Deutsch"},
	{ID: "es-ES", Name: "Español"},
	{ID: "fr-FR", Name: "Français"},
	{ID: "ja-JP", Name: "日本語"},
	{ID: "ar", Name: "العربية", RTL: true},
	{ID: "he-IL", Name: "עברית", RTL: true},
	{ID: "fa-IR", Name: "فارسی", RTL: true},
}

// TextDirection is the writing direction of a language.
type TextDirection string

const (
	LTR TextDirection = "ltr"
	RTL TextDirection = "rtl"
)

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(Translations))
	for i, t := range Translations {
		tags[i] = language.MustParse(t.ID)
	}
	return language.NewMatcher(tags)
}

// Resolve maps any language tag to the ID of a selectable language. Exact
// IDs win; otherwise the closest match is used ("de" → "de-DE"), and anything
// unknown or unparseable resolves to DefaultLanguage.
func Resolve(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage
	}
	for _, t := range Translations {
		if strings.EqualFold(t.ID, lang) {
			return t.ID
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	return Translations[index].ID
}

// TranslationFor returns the Translation for lang after resolving it.
func TranslationFor(lang string) Translation {
	id := Resolve(lang)
	for _, t := range Translations {
		if t.ID == id {
			return t
		}
	}
	return Translations[0]
}

// Direction returns the text direction of lang.
func Direction(lang string) TextDirection {
	if TranslationFor(lang).RTL {
		return RTL
	}
	return LTR
}

// Next returns the language after lang in Translations, wrapping around.
// Prev is its inverse. Both drive the language picker.
func Next(lang string) string {
	return step(lang, 1)
}

// Prev returns the language before lang in Translations, wrapping around.
func Prev(lang string) string {
	return step(lang, -1)
}

func step(lang string, delta int) string {
	id := Resolve(lang)
	n := len(Translations)
	for i, t := range Translations {
		if t.ID == id {
			return Translations[((i+delta)%n+n)%n].ID
		}
	}
	return DefaultLanguage
}
