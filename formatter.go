package roozh

import (
	"fmt"
	"unicode/utf8"
)

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithNativeDigits renders numeric fields with the locale's own digits.
// Literal text is left as written.
func WithNativeDigits() FormatterOption {
	return func(f *Formatter) {
		f.nativeDigits = true
	}
}

// Formatter accumulates a layout one element at a time. Append methods return
// the formatter so calls chain; the first invalid append is remembered and
// reported by Build and Format.
//
// A Formatter is not safe for concurrent use. Build a Layout to share.
type Formatter struct {
	names        *Names
	nativeDigits bool
	elements     []Element
	err          error
}

// NewFormatter binds a formatter to a name table. A nil table selects the
// default locale of the default catalog.
func NewFormatter(names *Names, opts ...FormatterOption) *Formatter {
	if names == nil {
		catalog := DefaultCatalog()
		names, _ = catalog.Names(catalog.DefaultLocale())
	}
	f := &Formatter{names: names}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Names returns the bound name table.
func (f *Formatter) Names() *Names { return f.names }

func (f *Formatter) fail(err error) *Formatter {
	if f.err == nil {
		f.err = err
	}
	return f
}

func (f *Formatter) appendLiteral(text string) *Formatter {
	f.elements = append(f.elements, LiteralElement(text))
	return f
}

// AppendText appends literal text. Empty text is an error.
func (f *Formatter) AppendText(text string) *Formatter {
	if text == "" {
		return f.fail(fmt.Errorf("%w: empty literal text", ErrInvalidArgument))
	}
	return f.appendLiteral(text)
}

// AppendCharacter appends a single literal rune.
func (f *Formatter) AppendCharacter(r rune) *Formatter {
	if !utf8.ValidRune(r) {
		return f.fail(fmt.Errorf("%w: invalid literal rune %U", ErrInvalidArgument, r))
	}
	return f.appendLiteral(string(r))
}

func (f *Formatter) AppendSpace() *Formatter   { return f.appendLiteral(" ") }
func (f *Formatter) AppendNewLine() *Formatter { return f.appendLiteral("\r\n") }
func (f *Formatter) AppendSlash() *Formatter   { return f.appendLiteral("/") }
func (f *Formatter) AppendDot() *Formatter     { return f.appendLiteral(".") }
func (f *Formatter) AppendHyphen() *Formatter  { return f.appendLiteral("-") }
func (f *Formatter) AppendColon() *Formatter   { return f.appendLiteral(":") }

// AppendComponent appends c with its width clamped into [1, 4].
func (f *Formatter) AppendComponent(c Component) *Formatter {
	if !c.Field.valid() {
		return f.fail(fmt.Errorf("%w: unknown field %s", ErrInvalidArgument, c.Field))
	}
	f.elements = append(f.elements, ComponentElement(c))
	return f
}

func (f *Formatter) appendField(field Field, width int) *Formatter {
	return f.AppendComponent(Component{Field: field, Width: width})
}

func (f *Formatter) AppendDayOfMonth(width int) *Formatter { return f.appendField(DayOfMonth, width) }

// AppendMonth appends the month number, or its name for widths 3 (short) and 4 (full).
func (f *Formatter) AppendMonth(width int) *Formatter { return f.appendField(Month, width) }
func (f *Formatter) AppendMonthName() *Formatter      { return f.appendField(Month, 4) }
func (f *Formatter) AppendShortMonthName() *Formatter { return f.appendField(Month, 3) }

// AppendYear appends the year. Widths 1 and 2 keep only its last two digits.
func (f *Formatter) AppendYear(width int) *Formatter { return f.appendField(Year, width) }

// AppendHour appends the hour on a 12-hour clock (0-11).
func (f *Formatter) AppendHour(width int) *Formatter        { return f.appendField(Hour, width) }
func (f *Formatter) AppendHourOfDay(width int) *Formatter   { return f.appendField(HourOfDay, width) }
func (f *Formatter) AppendMinute(width int) *Formatter      { return f.appendField(Minute, width) }
func (f *Formatter) AppendSecond(width int) *Formatter      { return f.appendField(Second, width) }
func (f *Formatter) AppendMillisecond(width int) *Formatter { return f.appendField(Millisecond, width) }
func (f *Formatter) AppendMeridiem() *Formatter             { return f.appendField(MeridiemField, 1) }

// AppendDayOfWeek appends the day's position in the week, or its name for widths 3 and up.
func (f *Formatter) AppendDayOfWeek(width int) *Formatter { return f.appendField(DayOfWeek, width) }

// AppendPattern appends the elements described by a pattern such as "yyyy/MM/dd".
func (f *Formatter) AppendPattern(pattern string) *Formatter {
	elements, err := parsePattern(pattern)
	if err != nil {
		return f.fail(err)
	}
	f.elements = append(f.elements, elements...)
	return f
}

// Build freezes the accumulated elements into a Layout.
func (f *Formatter) Build() (Layout, error) {
	if f.err != nil {
		return Layout{}, f.err
	}
	if len(f.elements) == 0 {
		return Layout{}, fmt.Errorf("%w: nothing to render", ErrInvalidState)
	}
	return Layout{
		elements:     append([]Element(nil), f.elements...),
		names:        f.names,
		nativeDigits: f.nativeDigits,
	}, nil
}

// Format builds the layout and renders d with it.
func (f *Formatter) Format(d CalendarDate) (string, error) {
	layout, err := f.Build()
	if err != nil {
		return "", err
	}
	return layout.Render(d)
}

// Clear drops every element and any recorded error. The name table and
// options stay bound.
func (f *Formatter) Clear() *Formatter {
	f.elements = nil
	f.err = nil
	return f
}
