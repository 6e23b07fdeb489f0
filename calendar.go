// Package roozh converts dates between the Gregorian and the Solar Hijri (Jalali)
// calendars and renders them as localized text.
//
// Conversion is table driven: the Jalali leap rule follows the astronomical
// break points published by K.M. Borkowski and is valid for Jalali years
// MinYear through MaxYear.
//
//	conv := roozh.NewConverter()
//	d, err := conv.GregorianToJalali(time.Now())
//	names, _ := roozh.DefaultCatalog().Names(roozh.Persian)
//	text, err := roozh.NewFormatter(names).AppendPattern("d MMMM yyyy").Format(d)
package roozh

import (
	"fmt"
	"time"
)

// CalendarKind identifies the calendar a CalendarDate is expressed in.
type CalendarKind int

const (
	Gregorian CalendarKind = iota
	Jalali
)

func (k CalendarKind) String() string {
	switch k {
	case Gregorian:
		return "gregorian"
	case Jalali:
		return "jalali"
	default:
		return "unknown"
	}
}

// Meridiem is the AM/PM half of the day.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// Clock holds the time-of-day part of a CalendarDate.
type Clock struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

func (c Clock) validate() error {
	switch {
	case c.Hour < 0 || c.Hour > 23:
		return fmt.Errorf("%w: hour %d", ErrInvalidArgument, c.Hour)
	case c.Minute < 0 || c.Minute > 59:
		return fmt.Errorf("%w: minute %d", ErrInvalidArgument, c.Minute)
	case c.Second < 0 || c.Second > 59:
		return fmt.Errorf("%w: second %d", ErrInvalidArgument, c.Second)
	case c.Millisecond < 0 || c.Millisecond > 999:
		return fmt.Errorf("%w: millisecond %d", ErrInvalidArgument, c.Millisecond)
	}
	return nil
}

// CalendarDate is a converted date and wall-clock time. The zero value is not a
// valid date; build one with NewDate or a Converter.
type CalendarDate struct {
	calendar  CalendarKind
	year      int
	month     int
	day       int
	clock     Clock
	jdn       JulianDay
	weekStart time.Weekday
}

// NewDate validates and builds a date in the given calendar. The week starts on Saturday.
func NewDate(cal CalendarKind, year, month, day int, clock Clock) (CalendarDate, error) {
	return newDate(cal, year, month, day, clock, time.Saturday)
}

func newDate(cal CalendarKind, year, month, day int, clock Clock, weekStart time.Weekday) (CalendarDate, error) {
	days, err := DaysInMonth(cal, year, month)
	if err != nil {
		return CalendarDate{}, err
	}
	if day < 1 || day > days {
		return CalendarDate{}, fmt.Errorf("%w: day %d of %s %d/%d", ErrInvalidArgument, day, cal, year, month)
	}
	if err := clock.validate(); err != nil {
		return CalendarDate{}, err
	}

	var jdn JulianDay
	switch cal {
	case Jalali:
		if jdn, err = JalaliToJDN(year, month, day); err != nil {
			return CalendarDate{}, err
		}
	default:
		jdn = GregorianToJDN(year, month, day)
	}

	return CalendarDate{
		calendar:  cal,
		year:      year,
		month:     month,
		day:       day,
		clock:     clock,
		jdn:       jdn,
		weekStart: weekStart,
	}, nil
}

// DaysInMonth returns the length of a month in the given calendar.
func DaysInMonth(cal CalendarKind, year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidArgument, month)
	}

	switch cal {
	case Jalali:
		switch {
		case month <= 6:
			return 31, nil
		case month <= 11:
			return 30, nil
		}
		leap, err := IsLeapYear(year)
		if err != nil {
			return 0, err
		}
		if leap {
			return 30, nil
		}
		return 29, nil
	case Gregorian:
		// Day zero of the next month normalises to the last day of this one.
		return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
	default:
		return 0, fmt.Errorf("%w: calendar %d", ErrInvalidArgument, int(cal))
	}
}

func (d CalendarDate) Calendar() CalendarKind { return d.calendar }
func (d CalendarDate) Year() int              { return d.year }

// Month is 1-based in both calendars.
func (d CalendarDate) Month() int       { return d.month }
func (d CalendarDate) Day() int         { return d.day }
func (d CalendarDate) HourOfDay() int   { return d.clock.Hour }
func (d CalendarDate) Minute() int      { return d.clock.Minute }
func (d CalendarDate) Second() int      { return d.clock.Second }
func (d CalendarDate) Millisecond() int { return d.clock.Millisecond }
func (d CalendarDate) Clock() Clock     { return d.clock }
func (d CalendarDate) JDN() JulianDay   { return d.jdn }

// Hour returns the hour on a 12-hour clock, 0 through 11.
func (d CalendarDate) Hour() int {
	return d.clock.Hour % 12
}

func (d CalendarDate) Meridiem() Meridiem {
	if d.clock.Hour < 12 {
		return AM
	}
	return PM
}

// Weekday returns the day of the week independent of the week start.
func (d CalendarDate) Weekday() time.Weekday {
	// JDN 0 fell on a Monday.
	return time.Weekday(floorMod(int(d.jdn)+1, 7))
}

// DayOfWeek is the zero-based position of the day within a week beginning on the
// configured week start (Saturday unless changed).
func (d CalendarDate) DayOfWeek() int {
	return floorMod(int(d.Weekday())-int(d.weekStart), 7)
}

// IsZero reports whether d was never initialised.
func (d CalendarDate) IsZero() bool {
	return d.month == 0
}

// String formats the date as Y/m/d H:i:s.ms.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d.%03d",
		d.year, d.month, d.day,
		d.clock.Hour, d.clock.Minute, d.clock.Second, d.clock.Millisecond)
}
