package roozh

import (
	"fmt"
	"strings"
	"time"
)

// Config captures converter and formatter setup
type Config struct {
	DefaultLocale Locale
	Location      *time.Location
	WeekStart     time.Weekday
	NativeDigits  bool

	defaultLocaleID string
	localeFiles     []string
	clock           func() time.Time

	catalog   *Catalog
	converter *Converter
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		WeekStart: time.Saturday,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyCatalog(); err != nil {
		return nil, err
	}

	if cfg.Location == nil {
		cfg.Location = Tehran()
	}

	cfg.converter = NewConverter(
		WithLocation(cfg.Location),
		WithWeekStart(cfg.WeekStart),
		WithClock(cfg.clock),
	)

	return cfg, nil
}

func (c *Config) applyCatalog() error {
	if len(c.localeFiles) == 0 {
		c.catalog = DefaultCatalog()
	} else {
		catalog, err := NewCatalogLoader(c.localeFiles...).Load()
		if err != nil {
			return err
		}
		c.catalog = catalog
	}

	if c.defaultLocaleID == "" {
		c.DefaultLocale = c.catalog.DefaultLocale()
		return nil
	}

	locale, err := c.catalog.Parse(c.defaultLocaleID)
	if err != nil {
		return err
	}
	c.DefaultLocale = locale
	return nil
}

// WithDefaultLocale sets the locale used when none is requested. The value is
// resolved against the catalog, so names, codes, aliases and BCP 47 tags work.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.defaultLocaleID = strings.TrimSpace(locale)
		return nil
	}
}

// WithLocaleFiles registers YAML or JSON files overriding the embedded name tables.
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		for _, path := range paths {
			if path = strings.TrimSpace(path); path != "" {
				c.localeFiles = append(c.localeFiles, path)
			}
		}
		return nil
	}
}

// WithZone sets the zone conversions read wall-clock fields in.
func WithZone(loc *time.Location) Option {
	return func(c *Config) error {
		if loc == nil {
			return fmt.Errorf("%w: nil location", ErrInvalidArgument)
		}
		c.Location = loc
		return nil
	}
}

// WithZoneName loads a zone from the tz database, e.g. "Asia/Kabul".
func WithZoneName(name string) Option {
	return func(c *Config) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: zone %q: %v", ErrInvalidArgument, name, err)
		}
		c.Location = loc
		return nil
	}
}

// WithFirstDayOfWeek sets the day DayOfWeek counts from.
func WithFirstDayOfWeek(day time.Weekday) Option {
	return func(c *Config) error {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: weekday %d", ErrInvalidArgument, int(day))
		}
		c.WeekStart = day
		return nil
	}
}

// WithNativeDigitsEnabled makes formatters built from the config render numbers
// with each locale's own digits.
func WithNativeDigitsEnabled(enabled bool) Option {
	return func(c *Config) error {
		c.NativeDigits = enabled
		return nil
	}
}

// WithNow replaces the clock used by Converter.Now.
func WithNow(now func() time.Time) Option {
	return func(c *Config) error {
		c.clock = now
		return nil
	}
}

// Catalog returns the loaded name tables.
func (c *Config) Catalog() *Catalog {
	if c == nil {
		return nil
	}
	return c.catalog
}

// Converter returns the converter built from the config.
func (c *Config) Converter() *Converter {
	if c == nil {
		return nil
	}
	return c.converter
}

// Names returns the name table of locale.
func (c *Config) Names(locale Locale) (*Names, error) {
	return c.Catalog().Names(locale)
}

// NewFormatter returns a formatter for locale honouring the config's digit setting.
func (c *Config) NewFormatter(locale Locale) (*Formatter, error) {
	names, err := c.Names(locale)
	if err != nil {
		return nil, err
	}
	var opts []FormatterOption
	if c.NativeDigits {
		opts = append(opts, WithNativeDigits())
	}
	return NewFormatter(names, opts...), nil
}

// Format renders d with pattern in locale.
func (c *Config) Format(d CalendarDate, locale Locale, pattern string) (string, error) {
	f, err := c.NewFormatter(locale)
	if err != nil {
		return "", err
	}
	return f.AppendPattern(pattern).Format(d)
}
