package roozh

import (
	"fmt"
	"strings"
)

// Element is one entry of a Layout: either literal text or a Component.
type Element struct {
	Literal   string
	Component Component
	IsLiteral bool
}

// LiteralElement builds a literal element.
func LiteralElement(text string) Element {
	return Element{Literal: text, IsLiteral: true}
}

// ComponentElement builds a component element.
func ComponentElement(c Component) Element {
	return Element{Component: NewComponent(c.Field, c.Width)}
}

// Layout is an immutable sequence of elements bound to a name table. It is
// safe for concurrent use.
type Layout struct {
	elements     []Element
	names        *Names
	nativeDigits bool
}

// Elements returns a copy of the layout's elements.
func (l Layout) Elements() []Element {
	return append([]Element(nil), l.elements...)
}

// Len reports the number of elements.
func (l Layout) Len() int { return len(l.elements) }

// Render writes d using the layout. It never modifies the layout.
func (l Layout) Render(d CalendarDate) (string, error) {
	if len(l.elements) == 0 {
		return "", fmt.Errorf("%w: nothing to render", ErrInvalidState)
	}
	if d.IsZero() {
		return "", fmt.Errorf("%w: zero date", ErrInvalidArgument)
	}

	var b strings.Builder
	for _, el := range l.elements {
		if el.IsLiteral {
			b.WriteString(el.Literal)
			continue
		}
		text, numeric, err := el.Component.render(d, l.names)
		if err != nil {
			return "", err
		}
		if numeric && l.nativeDigits {
			text = ShapeDigits(l.names, text)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// Pattern returns the layout in pattern syntax, the inverse of ParseLayout.
func (l Layout) Pattern() string {
	var b strings.Builder
	for _, el := range l.elements {
		if el.IsLiteral {
			writeQuotedLiteral(&b, el.Literal)
			continue
		}
		letter := fieldLetters[el.Component.Field]
		count := el.Component.Width
		if el.Component.Field == MeridiemField {
			count = 1
		}
		b.WriteString(strings.Repeat(string(letter), count))
	}
	return b.String()
}
