package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date layout used for activity keys.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a string is not a valid YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day with no time-of-day or zone component.
// The zero value is not a valid date; use NewDate, ParseDate or DateOf.
type Date struct {
	t time.Time // always midnight UTC
}

// NewDate builds a Date, normalising out-of-range month and day values
// the same way time.Date does (e.g. month 13 rolls into the next year).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t as observed in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a strict YYYY-MM-DD key.
func ParseDate(key string) (Date, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate for fixtures and constants; it panics on bad input.
func MustParseDate(key string) Date {
	d, err := ParseDate(key)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

// AddDays returns the date n calendar days away (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Key renders the date as YYYY-MM-DD.
func (d Date) Key() string {
	return d.t.Format(DateLayout)
}

func (d Date) String() string { return d.Key() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// DaysUntil returns the number of calendar days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

// SameMonth reports whether both dates fall in the same year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month()
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// Time returns the date as midnight in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MarshalText implements encoding.TextMarshaler so dates serialise as keys
// in JSON and YAML, including as map keys.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
