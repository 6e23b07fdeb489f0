package roozh

// JulianDay is a Julian Day Number: the count of days since noon UTC on
// 1 January 4713 BC of the proleptic Julian calendar. It carries no time of day.
type JulianDay int

// Civil selects the reckoning used when mapping a year/month/day triple to a JulianDay.
type Civil int

const (
	ProlepticGregorian Civil = iota
	ProlepticJulian
)

func (c Civil) String() string {
	switch c {
	case ProlepticGregorian:
		return "gregorian"
	case ProlepticJulian:
		return "julian"
	default:
		return "unknown"
	}
}

// GregorianToJDN returns the Julian Day Number of a proleptic Gregorian date.
func GregorianToJDN(year, month, day int) JulianDay {
	return CivilToJDN(ProlepticGregorian, year, month, day)
}

// JDNToGregorian is the inverse of GregorianToJDN.
func JDNToGregorian(jdn JulianDay) (year, month, day int) {
	return JDNToCivil(ProlepticGregorian, jdn)
}

// CivilToJDN converts a Julian or Gregorian calendar date to its Julian Day Number.
//
// The formula follows D.A. Hatcher (1984) as modified by K.M. Borkowski (1987) and is
// exact from 1 March -100100 onwards. The Gregorian result is the Julian one plus a
// century correction.
func CivilToJDN(cal Civil, year, month, day int) JulianDay {
	// Months before March belong to the previous computational year. The shift relies
	// on truncated division: (m-8)/6 is -1 for January and February only.
	shift := (month - 8) / 6

	jdn := floorDiv((year+shift+100100)*1461, 4) +
		floorDiv(153*floorMod(month+9, 12)+2, 5) +
		day - 34840408

	if cal == ProlepticGregorian {
		jdn = jdn - floorDiv(floorDiv(year+100100+shift, 100)*3, 4) + 752
	}

	return JulianDay(jdn)
}

// JDNToCivil converts a Julian Day Number back to a Julian or Gregorian calendar date.
func JDNToCivil(cal Civil, jdn JulianDay) (year, month, day int) {
	n := int(jdn)

	j := 4*n + 139361631
	if cal == ProlepticGregorian {
		j = j + floorDiv(floorDiv(4*n+183187720, 146097)*3, 4)*4 - 3908
	}

	i := floorDiv(floorMod(j, 1461), 4)*5 + 308
	day = floorDiv(floorMod(i, 153), 5) + 1
	month = floorMod(floorDiv(i, 153), 12) + 1
	// (8-m)/6 truncates to 1 for January and February and to 0 otherwise.
	year = floorDiv(j, 1461) - 100100 + (8-month)/6

	return year, month, day
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
