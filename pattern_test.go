package roozh

import (
	"errors"
	"testing"
)

func TestParseLayoutRender(t *testing.T) {
	d := mustDate(t, Jalali, 1403, 1, 1, Clock{Hour: 12, Minute: 7, Second: 9, Millisecond: 40})
	en := mustNames(t, English)

	cases := []struct {
		pattern string
		want    string
	}{
		{"yyyy/MM/dd", "1403/01/01"},
		{"yy-M-d", "03-1-1"},
		{"EEEE, d MMM yyyy 'at' HH:mm", "Wednesday, 1 Far 1403 at 12:07"},
		{"d MMMM yyyy hh:mm:ss.S a", "1 Farvardin 1403 00:07:09.40 p.m."},
		{"E", "4"},
		{"yyyyyy", "1403"},
		{"aaa", "p.m."},
		{"''yy''", "'03'"},
		{"'it''s' yyyy", "it's 1403"},
		{"[d] #", "[1] #"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			layout, err := ParseLayout(en, tc.pattern)
			if err != nil {
				t.Fatalf("ParseLayout(%q): %v", tc.pattern, err)
			}
			got, err := layout.Render(d)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseLayoutErrors(t *testing.T) {
	en := mustNames(t, English)
	for _, pattern := range []string{"", "yyyy 'open"} {
		if _, err := ParseLayout(en, pattern); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ParseLayout(%q) error = %v, want ErrInvalidArgument", pattern, err)
		}
	}
}

func TestParsePatternElements(t *testing.T) {
	elements, err := parsePattern("yyyy/MM 'at' a")
	if err != nil {
		t.Fatal(err)
	}

	want := []Element{
		ComponentElement(Component{Field: Year, Width: 4}),
		LiteralElement("/"),
		ComponentElement(Component{Field: Month, Width: 2}),
		LiteralElement(" at "),
		ComponentElement(Component{Field: MeridiemField, Width: 1}),
	}
	if len(elements) != len(want) {
		t.Fatalf("elements = %+v", elements)
	}
	for i := range want {
		if elements[i] != want[i] {
			t.Fatalf("element %d = %+v, want %+v", i, elements[i], want[i])
		}
	}
}

func TestLayoutPatternRoundTrip(t *testing.T) {
	en := mustNames(t, English)
	d := mustDate(t, Jalali, 1403, 7, 28, Clock{Hour: 18, Minute: 45})

	for _, pattern := range []string{
		"yyyy/MM/dd 'at' a",
		"EEEE d MMMM yy, HH:mm",
		"''d''",
	} {
		layout, err := ParseLayout(en, pattern)
		if err != nil {
			t.Fatal(err)
		}
		again, err := ParseLayout(en, layout.Pattern())
		if err != nil {
			t.Fatalf("ParseLayout(%q): %v", layout.Pattern(), err)
		}

		first, _ := layout.Render(d)
		second, _ := again.Render(d)
		if first != second {
			t.Fatalf("%q -> %q: %q != %q", pattern, layout.Pattern(), first, second)
		}
	}

	layout, _ := ParseLayout(en, "yyyy/MM/dd 'at' a")
	if got := layout.Pattern(); got != "yyyy/MM/dd' at 'a" {
		t.Fatalf("Pattern = %q", got)
	}
}

func TestFieldString(t *testing.T) {
	if DayOfWeek.String() != "day_of_week" || Field(99).String() != "field(99)" {
		t.Fatalf("Field.String = %q / %q", DayOfWeek.String(), Field(99).String())
	}
}
