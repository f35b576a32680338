package timequery

import (
	"fmt"
	"time"
)

// Date is the calendar date portion of an instant.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// In returns midnight at the start of the date in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String returns the date in the ISO 8601 form 2006-01-02.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock is the time of day portion of an instant.
type Clock struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	hour, minute, second := t.Clock()
	return Clock{Hour: hour, Minute: minute, Second: second, Nanosecond: t.Nanosecond()}
}

// String returns the time of day in the form 15:04:05, followed by the
// fractional second when it is not zero.
func (c Clock) String() string {
	return time.Date(0, time.January, 1, c.Hour, c.Minute, c.Second, c.Nanosecond, time.UTC).
		Format("15:04:05.999999999")
}
