package roozh

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// digitShaper returns a transformer replacing ASCII digits with the locale's
// digits. It returns nil when the locale already uses ASCII digits.
func digitShaper(names *Names) transform.Transformer {
	if names == nil || names.Digits == asciiDigits {
		return nil
	}
	digits := names.Digits
	return runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits[r-'0']
		}
		return r
	})
}

var asciiDigits = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// ShapeDigits rewrites the ASCII digits of s with the digits of names.
func ShapeDigits(names *Names, s string) string {
	shaper := digitShaper(names)
	if shaper == nil {
		return s
	}
	out, _, err := transform.String(shaper, s)
	if err != nil {
		return s
	}
	return out
}
