// Package civil provides calendar dates pinned to India Standard Time.
//
// Every sale in the system is attributed to an IST calendar day, no matter
// where the server or the caller runs. Conversion applies a fixed +05:30
// offset to the instant's UTC value; the ambient timezone is never read.
package civil

import (
	"fmt"
	"time"
)

// istOffset is the fixed offset applied to every instant.
const istOffset = 5*time.Hour + 30*time.Minute

// A Date is a calendar date with no time-of-day and no location attached.
// It marshals to and from ISO YYYY-MM-DD strings.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the IST calendar date the instant falls on.
func DateOf(t time.Time) Date {
	shifted := t.UTC().Add(istOffset)
	year, month, day := shifted.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current IST calendar date according to now.
// A nil now falls back to time.Now.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return DateOf(now())
}

// Parse reads an ISO YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("civil: parse %q: %w", s, err)
	}
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustParse is Parse for fixtures and seeds; it panics on malformed input.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime takes the clock-face date of t in its own location, with no
// offset applied. Used when reading DATE columns, which carry no instant.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// String formats the date as ISO YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO string date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("civil: date must be a %q string", "YYYY-MM-DD")
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC on d, the canonical instant for storage.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or 1 as d sorts before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Weekday returns the day of week, Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n calendar months. When the day-of-month
// would overflow the target month it clamps to that month's last day, so
// Jan 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	year, month, _ := first.Date()
	day := d.Day
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

// AddYears returns d shifted by n calendar years, clamping Feb 29.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// DaysInMonth returns the length of the given calendar month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalises to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
