// Package timequery computes points in time relative to a reference instant
// by chaining named calendar transforms.
//
//	start := timequery.New().LastMonth().BeginningOfMonth().Time()
//
// A transform is a pair of a [Type] (beginning_of, next, last) and a [Unit]
// (year, month, week, day, hour, minute). Every pair has a dedicated method,
// e.g. [Query.BeginningOfMonth], [Query.NextWeek] or [Query.LastDay], and a
// few aliases exist for common pairs: [Query.Midnight], [Query.Yesterday] and
// [Query.Tomorrow]. Transforms can also be chained dynamically with
// [Query.Apply] or by name with [Query.Call], both of which reject unknown
// transforms immediately with an error matching [ErrInvalidTransform].
//
// Chaining never modifies the receiver. Each call returns a new [Query] with
// its own copy of the chain, so a Query can be used as a base for several
// different expressions.
//
// Evaluation is lazy. The first call to [Query.Time], [Query.Date] or
// [Query.Clock] applies the chain in order, each step starting from the
// previous step's result, and caches the value for the lifetime of the Query.
// When no reference instant was given with [WithAsOf], the current time is
// captured at that first evaluation and never again.
//
// Beginning-of transforms zero every finer field: the beginning of a month is
// midnight on its first day. Weeks start on Monday. Month and year offsets
// clamp the day to the length of the target month, so next_month applied to
// January 31 yields the last day of February.
package timequery
