package roozh

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/locales.yaml
var defaultLocalesYAML []byte

type rawLocaleFile struct {
	Default string               `json:"default" yaml:"default"`
	Locales map[string]rawLocale `json:"locales" yaml:"locales"`
}

type rawLocale struct {
	Name        string   `json:"name" yaml:"name"`
	Parent      string   `json:"parent" yaml:"parent"`
	Aliases     []string `json:"aliases" yaml:"aliases"`
	Months      []string `json:"months" yaml:"months"`
	ShortMonths []string `json:"short_months" yaml:"short_months"`
	Weekdays    []string `json:"weekdays" yaml:"weekdays"`
	Meridiem    []string `json:"meridiem" yaml:"meridiem"`
	Digits      string   `json:"digits" yaml:"digits"`
}

// CatalogLoader builds a Catalog from the embedded name tables plus optional
// override files. Files are applied in order; later files win field by field.
type CatalogLoader struct {
	paths []string
}

// NewCatalogLoader creates a loader with the given override files (.yaml, .yml or .json).
func NewCatalogLoader(paths ...string) *CatalogLoader {
	return &CatalogLoader{paths: append([]string(nil), paths...)}
}

// AddFile appends an override file.
func (l *CatalogLoader) AddFile(path string) {
	if path == "" {
		return
	}
	l.paths = append(l.paths, path)
}

// Load decodes, merges and validates the name tables.
func (l *CatalogLoader) Load() (*Catalog, error) {
	base, err := decodeLocaleFile("locales.yaml", defaultLocalesYAML)
	if err != nil {
		return nil, fmt.Errorf("roozh: parse default locales: %w", err)
	}

	if l != nil {
		for _, path := range l.paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("roozh: read %s: %w", path, err)
			}
			src, err := decodeLocaleFile(path, data)
			if err != nil {
				return nil, fmt.Errorf("roozh: decode %s: %w", path, err)
			}
			mergeLocaleFiles(&base, src)
		}
	}

	entries, err := resolveLocaleEntries(base.Locales)
	if err != nil {
		return nil, err
	}

	def := Persian
	if base.Default != "" {
		locale, ok := localeFromCode(base.Default)
		if !ok {
			return nil, fmt.Errorf("%w: default locale %q is not supported", ErrInvalidConfig, base.Default)
		}
		def = locale
	}

	return newCatalog(def, entries)
}

func decodeLocaleFile(path string, data []byte) (rawLocaleFile, error) {
	var file rawLocaleFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return rawLocaleFile{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return rawLocaleFile{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return rawLocaleFile{}, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(file.Locales) == 0 && file.Default == "" {
		return rawLocaleFile{}, errors.New("empty locale file")
	}
	return file, nil
}

func mergeLocaleFiles(dst *rawLocaleFile, src rawLocaleFile) {
	if src.Default != "" {
		dst.Default = src.Default
	}
	if len(src.Locales) == 0 {
		return
	}
	if dst.Locales == nil {
		dst.Locales = make(map[string]rawLocale, len(src.Locales))
	}
	for code, entry := range src.Locales {
		key := normalizeLocaleKey(code)
		dst.Locales[key] = dst.Locales[key].overlay(entry)
	}
}

// overlay returns r with every field set in src replacing its own.
func (r rawLocale) overlay(src rawLocale) rawLocale {
	if src.Name != "" {
		r.Name = src.Name
	}
	if src.Parent != "" {
		r.Parent = src.Parent
	}
	if len(src.Aliases) > 0 {
		r.Aliases = append(append([]string(nil), r.Aliases...), src.Aliases...)
	}
	if len(src.Months) > 0 {
		r.Months = src.Months
	}
	if len(src.ShortMonths) > 0 {
		r.ShortMonths = src.ShortMonths
	}
	if len(src.Weekdays) > 0 {
		r.Weekdays = src.Weekdays
	}
	if len(src.Meridiem) > 0 {
		r.Meridiem = src.Meridiem
	}
	if src.Digits != "" {
		r.Digits = src.Digits
	}
	return r
}

// inherit fills the lists r leaves empty from its parent. Aliases, name and
// parent are never inherited.
func (r rawLocale) inherit(parent rawLocale) rawLocale {
	if len(r.Months) == 0 {
		r.Months = parent.Months
	}
	if len(r.ShortMonths) == 0 {
		r.ShortMonths = parent.ShortMonths
	}
	if len(r.Weekdays) == 0 {
		r.Weekdays = parent.Weekdays
	}
	if len(r.Meridiem) == 0 {
		r.Meridiem = parent.Meridiem
	}
	if r.Digits == "" {
		r.Digits = parent.Digits
	}
	return r
}

func resolveLocaleEntries(raw map[string]rawLocale) (map[Locale]rawLocale, error) {
	byLocale := make(map[Locale]rawLocale, len(raw))
	for code, entry := range raw {
		locale, ok := localeFromCode(code)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported locale %q", ErrInvalidConfig, code)
		}
		byLocale[locale] = entry
	}

	resolved := make(map[Locale]rawLocale, len(byLocale))
	var resolve func(locale Locale, visiting map[Locale]bool) (rawLocale, error)
	resolve = func(locale Locale, visiting map[Locale]bool) (rawLocale, error) {
		if entry, ok := resolved[locale]; ok {
			return entry, nil
		}
		entry, ok := byLocale[locale]
		if !ok {
			return rawLocale{}, fmt.Errorf("%w: locale %q is not defined", ErrInvalidConfig, locale.Code())
		}
		if entry.Parent != "" {
			parent, ok := localeFromCode(entry.Parent)
			if !ok {
				return rawLocale{}, fmt.Errorf("%w: locale %q references unsupported parent %q", ErrInvalidConfig, locale.Code(), entry.Parent)
			}
			if visiting[parent] {
				return rawLocale{}, fmt.Errorf("%w: parent cycle at locale %q", ErrInvalidConfig, locale.Code())
			}
			visiting[locale] = true
			parentEntry, err := resolve(parent, visiting)
			if err != nil {
				return rawLocale{}, err
			}
			entry = entry.inherit(parentEntry)
		}
		resolved[locale] = entry
		return entry, nil
	}

	for locale := range byLocale {
		if _, err := resolve(locale, map[Locale]bool{}); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

func normalizeName(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
