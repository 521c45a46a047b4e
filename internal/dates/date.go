package dates

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the on-disk representation of a calendar date.
const Format = "2006-01-02"

// Date represents a calendar date with day granularity. Time-of-day never
// participates in comparisons; two dates are equal iff they name the same day.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
// Out-of-range components roll over the way time.Date defines
// (e.g. January 32 becomes February 1).
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime strips the time-of-day component from t.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

// Today returns the current calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// time returns the canonical midnight-UTC instant for the day.
func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week (Sunday = 0).
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// Add returns the date shifted by the given number of days.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether d falls on an earlier day than x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d falls on a later day than x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date as ISO-8601 (2006-01-02).
func (d Date) String() string { return d.time().Format(Format) }

// Parse reads a date from its ISO-8601 form. Full RFC3339 timestamps are
// accepted too, truncated to their calendar day, so payloads written by
// earlier versions of the app still load.
func Parse(s string) (Date, error) {
	if t, err := time.Parse(Format, s); err == nil {
		return FromTime(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, Format, err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON encodes the date as an ISO-8601 JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO-8601 JSON string into the date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
