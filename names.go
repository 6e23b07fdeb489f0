package roozh

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Names is the name table of one locale. Values are immutable once loaded.
type Names struct {
	Locale      Locale
	Tag         language.Tag
	DisplayName string
	Months      [12]string
	ShortMonths [12]string
	// Weekdays are ordered Saturday first.
	Weekdays [7]string
	// Meridiem holds the AM and PM strings, in that order.
	Meridiem [2]string
	Digits   [10]rune
}

// Month returns the full name of a 1-based Jalali month.
func (n *Names) Month(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d", ErrInvalidArgument, month)
	}
	return n.Months[month-1], nil
}

// ShortMonth returns the abbreviated name of a 1-based Jalali month.
func (n *Names) ShortMonth(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d", ErrInvalidArgument, month)
	}
	return n.ShortMonths[month-1], nil
}

// Weekday returns the name of a weekday.
func (n *Names) Weekday(day time.Weekday) (string, error) {
	if day < time.Sunday || day > time.Saturday {
		return "", fmt.Errorf("%w: weekday %d", ErrInvalidArgument, int(day))
	}
	// Saturday is time.Weekday 6 and index 0 of the table.
	return n.Weekdays[(int(day)+1)%7], nil
}

// MeridiemText returns the localized AM or PM marker.
func (n *Names) MeridiemText(m Meridiem) string {
	if m == PM {
		return n.Meridiem[1]
	}
	return n.Meridiem[0]
}

func newNames(locale Locale, raw rawLocale) (*Names, error) {
	fail := func(field string, got, want int) error {
		return fmt.Errorf("%w: locale %q has %d %s, want %d", ErrInvalidConfig, locale.Code(), got, field, want)
	}

	if len(raw.Months) != 12 {
		return nil, fail("months", len(raw.Months), 12)
	}
	if len(raw.ShortMonths) != 12 {
		return nil, fail("short_months", len(raw.ShortMonths), 12)
	}
	if len(raw.Weekdays) != 7 {
		return nil, fail("weekdays", len(raw.Weekdays), 7)
	}
	if len(raw.Meridiem) != 2 {
		return nil, fail("meridiem", len(raw.Meridiem), 2)
	}
	if count := utf8.RuneCountInString(raw.Digits); count != 10 {
		return nil, fail("digits", count, 10)
	}

	names := &Names{
		Locale:      locale,
		Tag:         locale.Tag(),
		DisplayName: raw.Name,
	}
	if names.DisplayName == "" {
		names.DisplayName = locale.String()
	}

	if err := fillNames(names.Months[:], raw.Months, locale, "months"); err != nil {
		return nil, err
	}
	if err := fillNames(names.ShortMonths[:], raw.ShortMonths, locale, "short_months"); err != nil {
		return nil, err
	}
	if err := fillNames(names.Weekdays[:], raw.Weekdays, locale, "weekdays"); err != nil {
		return nil, err
	}
	if err := fillNames(names.Meridiem[:], raw.Meridiem, locale, "meridiem"); err != nil {
		return nil, err
	}

	i := 0
	for _, r := range raw.Digits {
		names.Digits[i] = r
		i++
	}

	return names, nil
}

func fillNames(dst, src []string, locale Locale, field string) error {
	for i, value := range src {
		value = normalizeName(value)
		if value == "" {
			return fmt.Errorf("%w: locale %q has an empty entry %d in %s", ErrInvalidConfig, locale.Code(), i, field)
		}
		dst[i] = value
	}
	return nil
}
