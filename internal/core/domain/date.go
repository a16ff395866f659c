package domain

import (
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. The zero value means "no date".
// Values that carry a time suffix (e.g. RFC 3339 timestamps) are accepted and
// only their date part is used.
type Date string

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d == ""
}

// Time parses the date as midnight UTC. ok is false for absent or malformed dates.
func (d Date) Time() (t time.Time, ok bool) {
	s := string(d)
	if len(s) < len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether the date parses.
func (d Date) Valid() bool {
	_, ok := d.Time()
	return ok
}

// AddDays returns the date n days later. ok is false when d does not parse.
func (d Date) AddDays(n int) (Date, bool) {
	t, ok := d.Time()
	if !ok {
		return "", false
	}
	return DateOf(t.AddDate(0, 0, n)), true
}

// InMonth reports whether the date falls in the given calendar month and year.
func (d Date) InMonth(year int, month time.Month) bool {
	t, ok := d.Time()
	if !ok {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// Normalized returns the canonical YYYY-MM-DD form, or d unchanged when it does not parse.
func (d Date) Normalized() Date {
	t, ok := d.Time()
	if !ok {
		return d
	}
	return DateOf(t)
}
