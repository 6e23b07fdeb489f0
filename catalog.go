package roozh

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// Catalog is an immutable set of locale name tables.
type Catalog struct {
	defaultLocale Locale
	names         map[Locale]*Names
	aliases       map[string]Locale
	matcher       language.Matcher
}

func newCatalog(defaultLocale Locale, entries map[Locale]rawLocale) (*Catalog, error) {
	names := make(map[Locale]*Names, len(entries))
	aliases := make(map[string]Locale)

	for _, locale := range Locales() {
		entry, ok := entries[locale]
		if !ok {
			return nil, fmt.Errorf("%w: locale %q is not defined", ErrInvalidConfig, locale.Code())
		}

		table, err := newNames(locale, entry)
		if err != nil {
			return nil, err
		}
		names[locale] = table

		for _, alias := range entry.Aliases {
			key := normalizeLocaleKey(alias)
			if key == "" {
				continue
			}
			if owner, exists := aliases[key]; exists && owner != locale {
				return nil, fmt.Errorf("%w: alias %q claimed by %q and %q", ErrInvalidConfig, alias, owner.Code(), locale.Code())
			}
			aliases[key] = locale
		}
	}

	tags := make([]language.Tag, 0, len(names))
	for _, locale := range Locales() {
		tags = append(tags, locale.Tag())
	}

	return &Catalog{
		defaultLocale: defaultLocale,
		names:         names,
		aliases:       aliases,
		matcher:       language.NewMatcher(tags),
	}, nil
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return NewCatalogLoader().Load()
})

// DefaultCatalog returns the catalog built from the embedded name tables.
// It panics if the embedded data is invalid.
func DefaultCatalog() *Catalog {
	catalog, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// ParseLocale resolves a locale identifier against the default catalog.
func ParseLocale(id string) (Locale, error) {
	return DefaultCatalog().Parse(id)
}

// DefaultLocale returns the locale used when none is requested.
func (c *Catalog) DefaultLocale() Locale {
	if c == nil {
		return Persian
	}
	return c.defaultLocale
}

// Names returns the name table for a locale.
func (c *Catalog) Names(locale Locale) (*Names, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidState)
	}
	names, ok := c.names[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLocale, int(locale))
	}
	return names, nil
}

// Parse resolves an identifier: a code ("fa"), an English name ("persian"), a
// configured alias ("fa-AF") or any BCP 47 tag close enough to a supported one.
func (c *Catalog) Parse(id string) (Locale, error) {
	key := normalizeLocaleKey(id)
	if key == "" {
		return 0, fmt.Errorf("%w: empty locale", ErrUnknownLocale)
	}

	if locale, ok := localeFromCode(key); ok {
		return locale, nil
	}
	if locale, ok := c.aliases[key]; ok {
		return locale, nil
	}

	tag, err := language.Parse(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, id, err)
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	return Locales()[index], nil
}
