package roozh

import "fmt"

const (
	// MinYear is the first Jalali year covered by the break-point table.
	MinYear = -61
	// MaxYear is the last Jalali year covered by the break-point table.
	MaxYear = 3177
)

// breakPoints are the Jalali years at which the intercalation sub-cycle changes,
// after K.M. Borkowski, "The Persian calendar for 3000 years".
var breakPoints = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// BreakPoints returns a copy of the break-point table.
func BreakPoints() []int {
	out := make([]int, len(breakPoints))
	copy(out, breakPoints[:])
	return out
}

// Intercalation describes where a Jalali year sits in its leap cycle.
type Intercalation struct {
	Year          int
	GregorianYear int
	// MarchDay is the day of March (Gregorian) on which the Jalali year begins.
	MarchDay int
	// YearsSinceLeap is 0 for a leap year and 1..4 otherwise.
	YearsSinceLeap int
}

// IsLeap reports whether the year has 366 days.
func (i Intercalation) IsLeap() bool {
	return i.YearsSinceLeap == 0
}

// Resolve computes the intercalation data for a Jalali year.
// Years outside [MinYear, MaxYear] return an error wrapping ErrOutOfRange.
func Resolve(jalaliYear int) (Intercalation, error) {
	if jalaliYear < breakPoints[0] || jalaliYear >= breakPoints[len(breakPoints)-1] {
		return Intercalation{}, fmt.Errorf("%w: jalali year %d not in [%d, %d]", ErrOutOfRange, jalaliYear, MinYear, MaxYear)
	}

	gy := jalaliYear + 621
	leapJ := -14
	jp := breakPoints[0]

	var jump int
	for _, jm := range breakPoints[1:] {
		jump = jm - jp
		if jalaliYear < jm {
			break
		}
		leapJ += floorDiv(jump, 33)*8 + floorDiv(floorMod(jump, 33), 4)
		jp = jm
	}

	n := jalaliYear - jp
	leapJ += floorDiv(n, 33)*8 + floorDiv(floorMod(n, 33)+3, 4)
	if floorMod(jump, 33) == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := floorDiv(gy, 4) - floorDiv((floorDiv(gy, 100)+1)*3, 4) - 150

	if jump-n < 6 {
		n = n - jump + floorDiv(jump+4, 33)*33
	}

	// Truncated remainders: a raw -1 marks the fourth year after a leap year.
	sinceLeap := (((n + 1) % 33) - 1) % 4
	if sinceLeap == -1 {
		sinceLeap = 4
	}

	return Intercalation{
		Year:           jalaliYear,
		GregorianYear:  gy,
		MarchDay:       20 + leapJ - leapG,
		YearsSinceLeap: sinceLeap,
	}, nil
}

// IsLeapYear reports whether the Jalali year has 366 days.
func IsLeapYear(jalaliYear int) (bool, error) {
	info, err := Resolve(jalaliYear)
	if err != nil {
		return false, err
	}
	return info.IsLeap(), nil
}

// JalaliToJDN returns the Julian Day Number of a Jalali date. The month and day are
// not range checked; use NewDate for validated input.
func JalaliToJDN(year, month, day int) (JulianDay, error) {
	info, err := Resolve(year)
	if err != nil {
		return 0, err
	}

	// Months 1-6 have 31 days and the rest 30; month/7 switches the block.
	offset := (month-1)*31 - (month/7)*(month-7) + day - 1
	return GregorianToJDN(info.GregorianYear, 3, info.MarchDay) + JulianDay(offset), nil
}

// JDNToJalali converts a Julian Day Number to a Jalali date.
func JDNToJalali(jdn JulianDay) (year, month, day int, err error) {
	gy, _, _ := JDNToGregorian(jdn)
	year = gy - 621

	info, err := Resolve(year)
	if err != nil {
		if year == MaxYear+1 {
			// January to mid March of the year after the table ends still
			// belongs to MaxYear.
			return jalaliFromYearStart(jdn, MaxYear)
		}
		return 0, 0, 0, err
	}

	k := int(jdn - GregorianToJDN(gy, 3, info.MarchDay))
	if k >= 0 {
		if k <= 185 {
			return year, 1 + k/31, k%31 + 1, nil
		}
		k -= 186
	} else {
		// Before Nowruz: the date is in the second half of the previous year.
		year--
		if year < MinYear {
			return 0, 0, 0, fmt.Errorf("%w: julian day %d precedes jalali year %d", ErrOutOfRange, jdn, MinYear)
		}
		k += 179
		if info.YearsSinceLeap == 1 {
			k++
		}
	}

	return year, 7 + k/30, k%30 + 1, nil
}

func jalaliFromYearStart(jdn JulianDay, year int) (int, int, int, error) {
	start, err := JalaliToJDN(year, 1, 1)
	if err != nil {
		return 0, 0, 0, err
	}
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, 0, 0, err
	}
	length := 365
	if leap {
		length = 366
	}

	k := int(jdn - start)
	if k < 0 || k >= length {
		return 0, 0, 0, fmt.Errorf("%w: julian day %d is outside jalali year %d", ErrOutOfRange, jdn, year)
	}
	if k <= 185 {
		return year, 1 + k/31, k%31 + 1, nil
	}
	k -= 186
	return year, 7 + k/30, k%30 + 1, nil
}
