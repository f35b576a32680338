package timequery

import (
	"time"

	"github.com/dgouldin/timequery/internal/delta"
)

// Unit is the calendar unit a transform operates on.
type Unit string

// Transform units.
const (
	Year   Unit = "year"
	Month  Unit = "month"
	Week   Unit = "week"
	Day    Unit = "day"
	Hour   Unit = "hour"
	Minute Unit = "minute"
)

// Type is the kind of a transform.
type Type string

// Transform types.
const (
	// BeginningOf moves to the first instant of the current unit.
	BeginningOf Type = "beginning_of"

	// Next moves one unit forward.
	Next Type = "next"

	// Last moves one unit backward.
	Last Type = "last"
)

// Step is a single transform in a query chain.
type Step struct {
	Type Type
	Unit Unit
}

// String returns the name of the step, which is also the name it is
// resolved by in [Lookup], e.g. "beginning_of_month".
func (s Step) String() string {
	return string(s.Type) + "_" + string(s.Unit)
}

// Validate returns an error matching [ErrInvalidTransform] if the step has
// no entry in the transform table.
func (s Step) Validate() error {
	units, ok := transforms[s.Type]
	if !ok {
		return invalidTypeError(s.Type)
	}
	if _, ok := units[s.Unit]; !ok {
		return invalidUnitError(s.Type, s.Unit)
	}
	return nil
}

// delta returns the calendar adjustment of a validated step.
func (s Step) delta() delta.Delta {
	return transforms[s.Type][s.Unit]
}

// The week starts on Monday: move back six days, then forward to the first
// Monday, which is the input date itself when it is a Monday.
var beginningOfWeek = delta.Delta{Days: -6}.
	SetWeekday(time.Monday).
	Truncate(delta.Day)

// transforms is read-only after package initialization.
var transforms = map[Type]map[Unit]delta.Delta{
	BeginningOf: {
		Year:   delta.Delta{}.Truncate(delta.Year),
		Month:  delta.Delta{}.Truncate(delta.Month),
		Week:   beginningOfWeek,
		Day:    delta.Delta{}.Truncate(delta.Day),
		Hour:   delta.Delta{}.Truncate(delta.Hour),
		Minute: delta.Delta{}.Truncate(delta.Minute),
	},
	Next: {
		Year:   {Years: 1},
		Month:  {Months: 1},
		Week:   {Weeks: 1},
		Day:    {Days: 1},
		Hour:   {Hours: 1},
		Minute: {Minutes: 1},
	},
	Last: {
		Year:   {Years: -1},
		Month:  {Months: -1},
		Week:   {Weeks: -1},
		Day:    {Days: -1},
		Hour:   {Hours: -1},
		Minute: {Minutes: -1},
	},
}

var (
	transformTypes = []Type{BeginningOf, Next, Last}
	transformUnits = []Unit{Year, Month, Week, Day, Hour, Minute}
)

// aliases is read-only after package initialization.
var aliases = map[string]Step{
	"midnight":  {BeginningOf, Day},
	"yesterday": {Last, Day},
	"tomorrow":  {Next, Day},
}

// names resolves transform and alias names to steps.
var names = func() map[string]Step {
	m := make(map[string]Step, len(transformTypes)*len(transformUnits)+len(aliases))
	for _, step := range Transforms() {
		m[step.String()] = step
	}
	for alias, step := range aliases {
		m[alias] = step
	}
	return m
}()

// Transforms returns every valid step, grouped by type in the order
// beginning_of, next, last, and by unit from year down to minute.
func Transforms() []Step {
	steps := make([]Step, 0, len(transformTypes)*len(transformUnits))
	for _, transformType := range transformTypes {
		for _, unit := range transformUnits {
			steps = append(steps, Step{transformType, unit})
		}
	}
	return steps
}

// Aliases returns a copy of the alias table, mapping each alias name to the
// step it stands for.
func Aliases() map[string]Step {
	m := make(map[string]Step, len(aliases))
	for alias, step := range aliases {
		m[alias] = step
	}
	return m
}

// Lookup returns the step for a transform name ("next_week") or an alias
// ("tomorrow").
func Lookup(name string) (Step, bool) {
	step, ok := names[name]
	return step, ok
}
