package roozh

import (
	"fmt"
	"strings"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is the key read from the template context to pick a locale.
	LocaleKey string
	// DatePattern is used by jalali_date. Defaults to "yyyy/MM/dd".
	DatePattern string
}

const defaultDatePattern = "yyyy/MM/dd"

// TemplateHelpers exposes conversion and formatting helpers for text/template
// and html/template FuncMaps. A nil cfg uses NewConfig defaults.
func TemplateHelpers(cfg *Config, helper HelperConfig) map[string]any {
	if cfg == nil {
		var err error
		if cfg, err = NewConfig(); err != nil {
			panic(err)
		}
	}
	if helper.LocaleKey == "" {
		helper.LocaleKey = "locale"
	}
	if helper.DatePattern == "" {
		helper.DatePattern = defaultDatePattern
	}

	conv := cfg.Converter()

	localeOf := func(ctx any) Locale {
		id := localeFromContext(ctx, helper.LocaleKey)
		if id == "" {
			return cfg.DefaultLocale
		}
		locale, err := cfg.Catalog().Parse(id)
		if err != nil {
			return cfg.DefaultLocale
		}
		return locale
	}

	formatIn := func(ctx any, t time.Time, pattern string) (string, error) {
		d, err := conv.GregorianToJalali(t)
		if err != nil {
			return "", err
		}
		return cfg.Format(d, localeOf(ctx), pattern)
	}

	return map[string]any{
		"jalali": func(t time.Time) (CalendarDate, error) {
			return conv.GregorianToJalali(t)
		},
		"jalali_format": func(ctx any, t time.Time, pattern string) (string, error) {
			return formatIn(ctx, t, pattern)
		},
		"jalali_date": func(ctx any, t time.Time) (string, error) {
			return formatIn(ctx, t, helper.DatePattern)
		},
		"gregorian_date": func(year, month, day int) (string, error) {
			d, err := conv.Date(Jalali, year, month, day, Clock{})
			if err != nil {
				return "", err
			}
			g, err := conv.Convert(d)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%04d-%02d-%02d", g.Year(), g.Month(), g.Day()), nil
		},
		"current_locale": func(ctx any) string {
			return localeOf(ctx).Code()
		},
	}
}

func localeFromContext(ctx any, key string) string {
	switch v := ctx.(type) {
	case string:
		return strings.TrimSpace(v)
	case Locale:
		return v.Code()
	case map[string]string:
		return strings.TrimSpace(v[key])
	case map[string]any:
		switch value := v[key].(type) {
		case string:
			return strings.TrimSpace(value)
		case Locale:
			return value.Code()
		}
	}
	return ""
}
