// Package delta implements calendar offsets over time.Time.
//
// A Delta combines signed relative offsets (years, months, weeks, days, hours,
// minutes, seconds, microseconds) with optional absolute field assignments
// (year, month, day, hour, minute, second, microsecond and weekday). Both parts
// are applied together by a single call to [Delta.Apply]:
//
//  1. absolute year and month replace the corresponding fields
//  2. relative years and months are added
//  3. the day is clamped to the length of the resulting month
//  4. absolute time of day fields replace the corresponding fields
//  5. weeks, days, hours, minutes, seconds and microseconds are added
//     using wall clock arithmetic
//  6. if a weekday is set, the result moves forward to its first
//     occurrence on or after the computed date
//
// The location of the input time is preserved.
package delta
