package delta

import (
	"fmt"
	"strings"
	"time"
)

// Field identifies a calendar field that can be assigned an absolute value.
type Field int

// Assignable fields.
const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Microsecond
	numFields
)

var fieldNames = [numFields]string{
	"year", "month", "day", "hour", "minute", "second", "microsecond",
}

// String returns the lower case name of the field.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Delta is a calendar offset. The zero value is the identity.
type Delta struct {
	Years        int
	Months       int
	Weeks        int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int

	values     [numFields]int
	set        [numFields]bool
	weekday    time.Weekday
	hasWeekday bool
}

// Set returns a copy of d with the field f assigned the absolute value v.
// It will panic if the field is unknown.
func (d Delta) Set(f Field, v int) Delta {
	if f < 0 || f >= numFields {
		panic(fmt.Sprintf("delta: unknown field %d", int(f)))
	}
	d.values[f] = v
	d.set[f] = true
	return d
}

// SetWeekday returns a copy of d which moves the result forward to the
// first occurrence of w.
func (d Delta) SetWeekday(w time.Weekday) Delta {
	d.weekday = w
	d.hasWeekday = true
	return d
}

// Truncate returns a copy of d with every field finer than f assigned zero.
// Truncate(Day) zeroes the time of day.
func (d Delta) Truncate(f Field) Delta {
	for g := f + 1; g < numFields; g++ {
		if g == Month || g == Day {
			d = d.Set(g, 1)
			continue
		}
		d = d.Set(g, 0)
	}
	return d
}

// Value returns the absolute value assigned to the field f and whether it
// has been set.
func (d Delta) Value(f Field) (int, bool) {
	if f < 0 || f >= numFields {
		return 0, false
	}
	return d.values[f], d.set[f]
}

// Weekday returns the weekday the delta pins its result to, if any.
func (d Delta) Weekday() (time.Weekday, bool) {
	return d.weekday, d.hasWeekday
}

// IsZero reports whether applying d leaves every time unchanged.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Apply returns t adjusted by d.
func (d Delta) Apply(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	nsec := t.Nanosecond()

	if v, ok := d.Value(Year); ok {
		year = v
	}
	if v, ok := d.Value(Month); ok {
		month = time.Month(v)
	}
	year, month = addMonths(year, month, d.Years*12+d.Months)

	if v, ok := d.Value(Day); ok {
		day = v
	}
	day = min(day, daysIn(year, month))

	if v, ok := d.Value(Hour); ok {
		hour = v
	}
	if v, ok := d.Value(Minute); ok {
		minute = v
	}
	if v, ok := d.Value(Second); ok {
		second = v
	}
	if v, ok := d.Value(Microsecond); ok {
		nsec = v * int(time.Microsecond)
	}

	// time.Date normalizes values outside their usual ranges, which gives
	// wall clock arithmetic for the remaining relative offsets
	result := time.Date(
		year, month, day+d.Weeks*7+d.Days,
		hour+d.Hours, minute+d.Minutes, second+d.Seconds,
		nsec+d.Microseconds*int(time.Microsecond),
		t.Location(),
	)

	if d.hasWeekday {
		jump := (int(d.weekday) - int(result.Weekday()) + 7) % 7
		result = result.AddDate(0, 0, jump)
	}

	return result
}

// String returns a compact representation of the delta, e.g.
// "days=-6 hour=0 minute=0 weekday=Monday".
func (d Delta) String() string {
	var parts []string
	relative := []struct {
		name  string
		value int
	}{
		{"years", d.Years},
		{"months", d.Months},
		{"weeks", d.Weeks},
		{"days", d.Days},
		{"hours", d.Hours},
		{"minutes", d.Minutes},
		{"seconds", d.Seconds},
		{"microseconds", d.Microseconds},
	}
	for _, r := range relative {
		if r.value != 0 {
			parts = append(parts, fmt.Sprintf("%s=%+d", r.name, r.value))
		}
	}
	for f := Field(0); f < numFields; f++ {
		if d.set[f] {
			parts = append(parts, fmt.Sprintf("%s=%d", f, d.values[f]))
		}
	}
	if d.hasWeekday {
		parts = append(parts, fmt.Sprintf("weekday=%s", d.weekday))
	}
	if len(parts) == 0 {
		return "identity"
	}
	return strings.Join(parts, " ")
}

// addMonths adds n months to the given year and month, carrying into the
// year when the month leaves the [1, 12] range.
func addMonths(year int, month time.Month, n int) (int, time.Month) {
	total := year*12 + int(month) - 1 + n
	year = total / 12
	m := total % 12
	if m < 0 {
		m += 12
		year--
	}
	return year, time.Month(m + 1)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
