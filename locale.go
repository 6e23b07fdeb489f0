package roozh

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale selects a name table. It never affects the calendar math.
type Locale int

const (
	Persian Locale = iota
	Dari
	Pashto
	Kurdish
	English
)

var localeCodes = [...]string{
	Persian: "fa",
	Dari:    "prs",
	Pashto:  "ps",
	Kurdish: "ckb",
	English: "en",
}

var localeNames = [...]string{
	Persian: "persian",
	Dari:    "dari",
	Pashto:  "pashto",
	Kurdish: "kurdish",
	English: "english",
}

// Locales lists every supported locale in declaration order.
func Locales() []Locale {
	return []Locale{Persian, Dari, Pashto, Kurdish, English}
}

func (l Locale) valid() bool {
	return l >= Persian && l <= English
}

// Code returns the locale's BCP 47 language code.
func (l Locale) Code() string {
	if !l.valid() {
		return ""
	}
	return localeCodes[l]
}

func (l Locale) String() string {
	if !l.valid() {
		return "unknown"
	}
	return localeNames[l]
}

// Tag returns the language tag for the locale.
func (l Locale) Tag() language.Tag {
	if !l.valid() {
		return language.Und
	}
	return language.Make(localeCodes[l])
}

// localeFromCode maps a code or English name to a Locale.
func localeFromCode(code string) (Locale, bool) {
	key := normalizeLocaleKey(code)
	for _, l := range Locales() {
		if key == localeCodes[l] || key == localeNames[l] {
			return l, true
		}
	}
	return 0, false
}

// normalizeLocaleKey lower-cases a locale identifier and replaces underscores
// with hyphens.
func normalizeLocaleKey(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}
