package roozh

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// TehranZone is the zone conversions normalise to unless configured otherwise.
const TehranZone = "Asia/Tehran"

// tehranFallback is used when the embedded tz database cannot resolve TehranZone.
// Iran has observed a fixed +03:30 offset since 2022.
var tehranFallback = time.FixedZone(TehranZone, 3*60*60+30*60)

// Tehran returns the Asia/Tehran location.
func Tehran() *time.Location {
	loc, err := time.LoadLocation(TehranZone)
	if err != nil {
		return tehranFallback
	}
	return loc
}

// Converter converts instants to calendar dates in a fixed zone and week layout.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	location  *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithLocation sets the zone used to read wall-clock fields. Nil is ignored.
func WithLocation(loc *time.Location) ConverterOption {
	return func(c *Converter) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithWeekStart sets the first day of the week used by CalendarDate.DayOfWeek.
func WithWeekStart(day time.Weekday) ConverterOption {
	return func(c *Converter) {
		if day >= time.Sunday && day <= time.Saturday {
			c.weekStart = day
		}
	}
}

// WithClock replaces the source of the current time used by Now.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConverter returns a converter for Asia/Tehran with weeks starting on Saturday.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		location:  Tehran(),
		weekStart: time.Saturday,
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *Converter) Location() *time.Location { return c.location }
func (c *Converter) WeekStart() time.Weekday  { return c.weekStart }

// GregorianToJalali converts an instant to the Jalali date and wall-clock time
// observed in the converter's zone.
func (c *Converter) GregorianToJalali(t time.Time) (CalendarDate, error) {
	local := t.In(c.location)
	jdn := GregorianToJDN(local.Year(), int(local.Month()), local.Day())

	year, month, day, err := JDNToJalali(jdn)
	if err != nil {
		return CalendarDate{}, err
	}

	return CalendarDate{
		calendar:  Jalali,
		year:      year,
		month:     month,
		day:       day,
		clock:     clockOf(local),
		jdn:       jdn,
		weekStart: c.weekStart,
	}, nil
}

// FromUnixMilli converts epoch milliseconds to a Jalali date.
func (c *Converter) FromUnixMilli(ms int64) (CalendarDate, error) {
	return c.GregorianToJalali(time.UnixMilli(ms))
}

// Now converts the current time to a Jalali date. Every call produces a new value.
func (c *Converter) Now() (CalendarDate, error) {
	return c.GregorianToJalali(c.now())
}

// Gregorian returns the Gregorian date and wall-clock time of an instant in the
// converter's zone.
func (c *Converter) Gregorian(t time.Time) CalendarDate {
	local := t.In(c.location)
	return CalendarDate{
		calendar:  Gregorian,
		year:      local.Year(),
		month:     int(local.Month()),
		day:       local.Day(),
		clock:     clockOf(local),
		jdn:       GregorianToJDN(local.Year(), int(local.Month()), local.Day()),
		weekStart: c.weekStart,
	}
}

// JalaliToGregorian converts a Jalali date to its Gregorian equivalent, keeping the
// time of day.
func (c *Converter) JalaliToGregorian(d CalendarDate) (CalendarDate, error) {
	if d.IsZero() || d.calendar != Jalali {
		return CalendarDate{}, fmt.Errorf("%w: expected a jalali date, got %s", ErrInvalidArgument, d.calendar)
	}

	jdn, err := JalaliToJDN(d.year, d.month, d.day)
	if err != nil {
		return CalendarDate{}, err
	}

	year, month, day := JDNToGregorian(jdn)
	return CalendarDate{
		calendar:  Gregorian,
		year:      year,
		month:     month,
		day:       day,
		clock:     d.clock,
		jdn:       jdn,
		weekStart: c.weekStart,
	}, nil
}

// Convert returns d expressed in the other calendar.
func (c *Converter) Convert(d CalendarDate) (CalendarDate, error) {
	if d.IsZero() {
		return CalendarDate{}, fmt.Errorf("%w: zero date", ErrInvalidArgument)
	}
	if d.calendar == Jalali {
		return c.JalaliToGregorian(d)
	}

	year, month, day, err := JDNToJalali(d.jdn)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{
		calendar:  Jalali,
		year:      year,
		month:     month,
		day:       day,
		clock:     d.clock,
		jdn:       d.jdn,
		weekStart: c.weekStart,
	}, nil
}

// Time returns the instant of d's wall-clock time in the converter's zone.
func (c *Converter) Time(d CalendarDate) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, fmt.Errorf("%w: zero date", ErrInvalidArgument)
	}

	year, month, day := JDNToGregorian(d.jdn)
	return time.Date(year, time.Month(month), day,
		d.clock.Hour, d.clock.Minute, d.clock.Second,
		d.clock.Millisecond*int(time.Millisecond), c.location), nil
}

// Date builds a validated date using the converter's week start.
func (c *Converter) Date(cal CalendarKind, year, month, day int, clock Clock) (CalendarDate, error) {
	return newDate(cal, year, month, day, clock, c.weekStart)
}

func clockOf(t time.Time) Clock {
	return Clock{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}
