package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-roozh"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := newCLI(&stdout, &stderr)
	c.root.SetArgs(args)
	err := c.root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestJalaliCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"default layout", []string{"jalali", "2024-03-20 12:00"}, "1 فروردین 1403\n00:00:00.0 ب.ظ\n"},
		{"english layout", []string{"jalali", "2024-03-20", "--locale", "en", "--layout", "yyyy/MM/dd EEEE"}, "1403/01/01 Wednesday\n"},
		{"native digits", []string{"jalali", "2024-03-20", "--native-digits", "--layout", "yyyy/MM/dd"}, "۱۴۰۳/۰۱/۰۱\n"},
		{"escaped newline", []string{"jalali", "2024-03-20", "-l", "en", "--layout", `d\nMMMM`}, "1\nFarvardin\n"},
		{"rfc3339 in utc", []string{"jalali", "2024-03-19T21:00:00Z", "--layout", "yyyy/MM/dd HH:mm"}, "1403/01/01 00:30\n"},
		{"other zone", []string{"jalali", "2024-03-19 23:00", "--zone", "UTC", "--layout", "yyyy/MM/dd"}, "1402/12/29\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if out != tc.want {
				t.Fatalf("output = %q, want %q", out, tc.want)
			}
		})
	}
}

func TestGregorianCommand(t *testing.T) {
	out, _, err := run(t, "gregorian", "1403/12/30")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "2025-03-20\n" {
		t.Fatalf("output = %q", out)
	}

	if _, _, err := run(t, "gregorian", "1404/12/30"); !errors.Is(err, roozh.ErrInvalidArgument) {
		t.Fatalf("invalid date error = %v", err)
	}
	if _, _, err := run(t, "gregorian", "1404/12"); !errors.Is(err, roozh.ErrInvalidArgument) {
		t.Fatalf("malformed date error = %v", err)
	}
}

func TestYearCommand(t *testing.T) {
	out, _, err := run(t, "year", "1403")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"year: 1403", "leap: true", "days: 366", "nowruz: 2024-03-20"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := run(t, "year", "4000"); !errors.Is(err, roozh.ErrOutOfRange) {
		t.Fatalf("out of range error = %v", err)
	}
	if _, _, err := run(t, "year", "soon"); !errors.Is(err, roozh.ErrInvalidArgument) {
		t.Fatalf("non numeric error = %v", err)
	}
}

func TestLocalesCommand(t *testing.T) {
	out, _, err := run(t, "locales", "--locale", "dari")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(roozh.Locales()) {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "* prs") {
		t.Fatalf("default marker missing: %q", lines[1])
	}
	if !strings.Contains(lines[4], "Farvardin") {
		t.Fatalf("english line = %q", lines[4])
	}
}

func TestCommandErrors(t *testing.T) {
	if _, _, err := run(t, "locales", "--locale", "klingon"); !errors.Is(err, roozh.ErrUnknownLocale) {
		t.Fatalf("unknown locale error = %v", err)
	}
	if _, _, err := run(t, "jalali", "yesterday"); !errors.Is(err, roozh.ErrInvalidArgument) {
		t.Fatalf("bad date error = %v", err)
	}
	if _, _, err := run(t, "jalali"); err == nil {
		t.Fatal("expected argument count error")
	}
}

func TestNowCommandLogsAtDebug(t *testing.T) {
	out, logs, err := run(t, "now", "--log-level", "debug", "--layout", "yyyy")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("empty output")
	}
	if !strings.Contains(logs, "configuration loaded") {
		t.Fatalf("debug log missing:\n%s", logs)
	}
}
