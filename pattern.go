package roozh

import (
	"fmt"
	"strings"
)

var fieldLetters = map[Field]rune{
	Year:          'y',
	Month:         'M',
	DayOfMonth:    'd',
	Hour:          'h',
	HourOfDay:     'H',
	Minute:        'm',
	Second:        's',
	Millisecond:   'S',
	DayOfWeek:     'E',
	MeridiemField: 'a',
}

var letterFields = func() map[rune]Field {
	out := make(map[rune]Field, len(fieldLetters))
	for field, letter := range fieldLetters {
		out[letter] = field
	}
	return out
}()

// ParseLayout builds a layout from a pattern.
//
//	y M d h H m s S E  a run of the letter is a component of that width
//	a                  meridiem
//	'text'             literal text; '' is a single quote
//
// Every other character is literal.
func ParseLayout(names *Names, pattern string, opts ...FormatterOption) (Layout, error) {
	return NewFormatter(names, opts...).AppendPattern(pattern).Build()
}

func parsePattern(pattern string) ([]Element, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidArgument)
	}

	src := []rune(pattern)
	var (
		elements []Element
		literal  strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			elements = append(elements, LiteralElement(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(src); {
		r := src[i]

		if r == '\'' {
			if i+1 < len(src) && src[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			end := -1
			for j := i + 1; j < len(src); j++ {
				if src[j] != '\'' {
					continue
				}
				if j+1 < len(src) && src[j+1] == '\'' {
					j++
					continue
				}
				end = j
				break
			}
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote in pattern %q", ErrInvalidArgument, pattern)
			}
			literal.WriteString(strings.ReplaceAll(string(src[i+1:end]), "''", "'"))
			i = end + 1
			continue
		}

		field, ok := letterFields[r]
		if !ok {
			literal.WriteRune(r)
			i++
			continue
		}

		run := runLength(src, i)
		width := run
		if field == MeridiemField {
			width = 1
		}
		flush()
		elements = append(elements, ComponentElement(Component{Field: field, Width: width}))
		i += run
	}
	flush()

	return elements, nil
}

func runLength(src []rune, i int) int {
	n := 1
	for i+n < len(src) && src[i+n] == src[i] {
		n++
	}
	return n
}

func writeQuotedLiteral(b *strings.Builder, text string) {
	escaped := strings.ReplaceAll(text, "'", "''")
	if !strings.ContainsFunc(text, isASCIILetter) {
		b.WriteString(escaped)
		return
	}
	b.WriteByte('\'')
	b.WriteString(escaped)
	b.WriteByte('\'')
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
