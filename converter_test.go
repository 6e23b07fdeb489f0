package roozh

import (
	"errors"
	"testing"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

func TestGregorianToJalaliNowruz1403(t *testing.T) {
	conv := NewConverter()
	instant := time.Date(2024, 3, 20, 12, 0, 0, 0, Tehran())

	d, err := conv.GregorianToJalali(instant)
	if err != nil {
		t.Fatalf("GregorianToJalali: %v", err)
	}

	if d.Calendar() != Jalali || d.Year() != 1403 || d.Month() != 1 || d.Day() != 1 {
		t.Fatalf("date = %v", d)
	}
	if d.DayOfWeek() != 4 {
		t.Fatalf("DayOfWeek = %d, want 4", d.DayOfWeek())
	}
	if d.Meridiem() != PM || d.Hour() != 0 || d.HourOfDay() != 12 {
		t.Fatalf("Meridiem=%s Hour=%d HourOfDay=%d", d.Meridiem(), d.Hour(), d.HourOfDay())
	}
}

func TestGregorianToJalaliNormalisesZone(t *testing.T) {
	conv := NewConverter(WithLocation(time.UTC))

	// 21:00 UTC on 19 March is 00:30 on 20 March in Tehran.
	instant := time.Date(2024, 3, 19, 21, 0, 0, 0, time.UTC)

	inUTC, err := conv.GregorianToJalali(instant)
	if err != nil {
		t.Fatal(err)
	}
	if inUTC.Year() != 1402 || inUTC.Month() != 12 || inUTC.Day() != 29 {
		t.Fatalf("UTC date = %v", inUTC)
	}

	inTehran, err := NewConverter().GregorianToJalali(instant)
	if err != nil {
		t.Fatal(err)
	}
	if inTehran.Year() != 1403 || inTehran.Month() != 1 || inTehran.Day() != 1 {
		t.Fatalf("Tehran date = %v", inTehran)
	}
	if inTehran.HourOfDay() != 0 || inTehran.Minute() != 30 {
		t.Fatalf("Tehran clock = %+v", inTehran.Clock())
	}
}

func TestGregorianToJalaliMatchesPersianCalendar(t *testing.T) {
	conv := NewConverter(WithLocation(time.UTC))

	start := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		got, err := conv.GregorianToJalali(day)
		if err != nil {
			t.Fatalf("GregorianToJalali(%s): %v", day.Format(time.DateOnly), err)
		}

		want := ptime.New(day)
		if got.Year() != want.Year() || got.Month() != int(want.Month()) || got.Day() != want.Day() {
			t.Fatalf("%s: got %d/%d/%d, want %d/%d/%d", day.Format(time.DateOnly),
				got.Year(), got.Month(), got.Day(), want.Year(), int(want.Month()), want.Day())
		}
	}
}

func TestJalaliToGregorian(t *testing.T) {
	conv := NewConverter()
	cases := []struct {
		jy, jm, jd int
		gy, gm, gd int
	}{
		{1403, 1, 1, 2024, 3, 20},
		{1404, 1, 1, 2025, 3, 21},
		{1403, 12, 30, 2025, 3, 20},
		{1378, 10, 11, 2000, 1, 1},
		{1, 1, 1, 622, 3, 22},
	}

	for _, tc := range cases {
		d, err := conv.Date(Jalali, tc.jy, tc.jm, tc.jd, Clock{Hour: 8, Minute: 15})
		if err != nil {
			t.Fatal(err)
		}
		g, err := conv.JalaliToGregorian(d)
		if err != nil {
			t.Fatalf("JalaliToGregorian(%v): %v", d, err)
		}
		if g.Calendar() != Gregorian || g.Year() != tc.gy || g.Month() != tc.gm || g.Day() != tc.gd {
			t.Fatalf("JalaliToGregorian(%v) = %v", d, g)
		}
		if g.HourOfDay() != 8 || g.Minute() != 15 {
			t.Fatalf("clock not kept: %+v", g.Clock())
		}
		if g.JDN() != d.JDN() {
			t.Fatalf("JDN changed: %d -> %d", d.JDN(), g.JDN())
		}
	}
}

func TestJalaliToGregorianRejectsGregorian(t *testing.T) {
	conv := NewConverter()
	g := conv.Gregorian(time.Date(2024, 3, 20, 0, 0, 0, 0, Tehran()))

	if _, err := conv.JalaliToGregorian(g); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if _, err := conv.JalaliToGregorian(CalendarDate{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero date error = %v, want ErrInvalidArgument", err)
	}
}

func TestConvertBothWays(t *testing.T) {
	conv := NewConverter()
	g := conv.Gregorian(time.Date(2024, 10, 19, 9, 30, 0, 0, Tehran()))

	j, err := conv.Convert(g)
	if err != nil {
		t.Fatal(err)
	}
	if j.Year() != 1403 || j.Month() != 7 || j.Day() != 28 || j.HourOfDay() != 9 {
		t.Fatalf("Convert(gregorian) = %v", j)
	}

	back, err := conv.Convert(j)
	if err != nil {
		t.Fatal(err)
	}
	if back.Year() != 2024 || back.Month() != 10 || back.Day() != 19 {
		t.Fatalf("Convert(jalali) = %v", back)
	}

	if _, err := conv.Convert(CalendarDate{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Convert(zero) error = %v", err)
	}
}

func TestConverterTime(t *testing.T) {
	conv := NewConverter()
	instant := time.Date(2024, 3, 20, 12, 34, 56, 789*int(time.Millisecond), Tehran())

	d, err := conv.GregorianToJalali(instant)
	if err != nil {
		t.Fatal(err)
	}
	got, err := conv.Time(d)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(instant) {
		t.Fatalf("Time = %s, want %s", got, instant)
	}
}

func TestFromUnixMilliAndNow(t *testing.T) {
	fixed := time.Date(2025, 3, 21, 10, 0, 0, 0, time.UTC)
	conv := NewConverter(WithClock(func() time.Time { return fixed }))

	now, err := conv.Now()
	if err != nil {
		t.Fatal(err)
	}
	if now.Year() != 1404 || now.Month() != 1 || now.Day() != 1 {
		t.Fatalf("Now = %v", now)
	}

	fromMillis, err := conv.FromUnixMilli(fixed.UnixMilli())
	if err != nil {
		t.Fatal(err)
	}
	if fromMillis != now {
		t.Fatalf("FromUnixMilli = %v, Now = %v", fromMillis, now)
	}
}

func TestConverterOptions(t *testing.T) {
	conv := NewConverter(WithLocation(nil), WithWeekStart(time.Monday), nil)
	if conv.Location().String() != TehranZone {
		t.Fatalf("Location = %s", conv.Location())
	}
	if conv.WeekStart() != time.Monday {
		t.Fatalf("WeekStart = %s", conv.WeekStart())
	}

	d, err := conv.Date(Jalali, 1403, 1, 1, Clock{})
	if err != nil {
		t.Fatal(err)
	}
	// Wednesday counted from Monday.
	if d.DayOfWeek() != 2 {
		t.Fatalf("DayOfWeek = %d, want 2", d.DayOfWeek())
	}
}

func TestConverterRoundTrip(t *testing.T) {
	conv := NewConverter(WithLocation(time.UTC))
	start := time.Date(1800, 1, 1, 6, 45, 0, 0, time.UTC)

	for day := 0; day < 120_000; day += 7 {
		instant := start.AddDate(0, 0, day)

		j, err := conv.GregorianToJalali(instant)
		if err != nil {
			t.Fatalf("GregorianToJalali(%s): %v", instant, err)
		}
		g, err := conv.JalaliToGregorian(j)
		if err != nil {
			t.Fatalf("JalaliToGregorian(%v): %v", j, err)
		}
		back, err := conv.Time(g)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(instant) {
			t.Fatalf("round trip %s -> %v -> %s", instant, j, back)
		}
	}
}
