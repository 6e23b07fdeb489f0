package roozh

import (
	"fmt"
	"regexp"
	"strconv"
)

// Field is a date or time value a Component renders.
type Field int

const (
	DayOfMonth Field = iota
	Month
	Year
	Hour
	HourOfDay
	Minute
	Second
	Millisecond
	MeridiemField
	DayOfWeek
)

var fieldNames = [...]string{
	DayOfMonth:    "day_of_month",
	Month:         "month",
	Year:          "year",
	Hour:          "hour",
	HourOfDay:     "hour_of_day",
	Minute:        "minute",
	Second:        "second",
	Millisecond:   "millisecond",
	MeridiemField: "meridiem",
	DayOfWeek:     "day_of_week",
}

func (f Field) valid() bool {
	return f >= DayOfMonth && f <= DayOfWeek
}

func (f Field) String() string {
	if !f.valid() {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

const (
	minWidth = 1
	maxWidth = 4
)

// Component renders one field of a date at a width between 1 and 4.
type Component struct {
	Field Field
	Width int
}

// NewComponent returns a component with its width clamped into [1, 4].
func NewComponent(field Field, width int) Component {
	return Component{Field: field, Width: clampWidth(width)}
}

func clampWidth(width int) int {
	switch {
	case width < minWidth:
		return minWidth
	case width > maxWidth:
		return maxWidth
	}
	return width
}

var lastTwoDigits = regexp.MustCompile(`\d{2}$`)

// render produces the component text. Numeric output uses ASCII digits; the
// layout shapes them afterwards.
func (c Component) render(d CalendarDate, names *Names) (value string, numeric bool, err error) {
	width := clampWidth(c.Width)

	switch c.Field {
	case DayOfMonth:
		return pad(d.Day(), width), true, nil
	case Month:
		if width >= 3 {
			text, err := monthText(d, names, width)
			return text, false, err
		}
		return pad(d.Month(), width), true, nil
	case Year:
		year := strconv.Itoa(d.Year())
		if width <= 2 {
			if suffix := lastTwoDigits.FindString(year); suffix != "" {
				year = suffix
			}
		}
		return year, true, nil
	case Hour:
		return pad(d.Hour(), width), true, nil
	case HourOfDay:
		return pad(d.HourOfDay(), width), true, nil
	case Minute:
		return pad(d.Minute(), width), true, nil
	case Second:
		return pad(d.Second(), width), true, nil
	case Millisecond:
		return pad(d.Millisecond(), width), true, nil
	case MeridiemField:
		if names == nil {
			return "", false, fmt.Errorf("%w: meridiem needs a name table", ErrInvalidState)
		}
		return names.MeridiemText(d.Meridiem()), false, nil
	case DayOfWeek:
		if width >= 3 {
			if names == nil {
				return "", false, fmt.Errorf("%w: weekday name needs a name table", ErrInvalidState)
			}
			text, err := names.Weekday(d.Weekday())
			return text, false, err
		}
		return pad(d.DayOfWeek(), width), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s", ErrInvalidArgument, c.Field)
	}
}

func monthText(d CalendarDate, names *Names, width int) (string, error) {
	if d.Calendar() != Jalali {
		return "", fmt.Errorf("%w: month names are defined for jalali dates only", ErrInvalidArgument)
	}
	if names == nil {
		return "", fmt.Errorf("%w: month name needs a name table", ErrInvalidState)
	}
	if width == 3 {
		return names.ShortMonth(d.Month())
	}
	return names.Month(d.Month())
}

func pad(value, width int) string {
	if width >= 2 {
		return fmt.Sprintf("%02d", value)
	}
	return strconv.Itoa(value)
}
