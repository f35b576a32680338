package timequery_test

import (
	"testing"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/dgouldin/timequery/timequery"
)

// The start of the next period is the next fire time of a cron expression
// that fires at the start of every period.
func TestBeginningOfNextPeriod(t *testing.T) {
	periods := []struct {
		expression string
		chain      func(*timequery.Query) *timequery.Query
	}{
		{"* * * * *", func(q *timequery.Query) *timequery.Query { return q.BeginningOfMinute().NextMinute() }},
		{"0 * * * *", func(q *timequery.Query) *timequery.Query { return q.BeginningOfHour().NextHour() }},
		{"0 0 * * *", func(q *timequery.Query) *timequery.Query { return q.BeginningOfDay().NextDay() }},
		{"0 0 * * 1", func(q *timequery.Query) *timequery.Query { return q.BeginningOfWeek().NextWeek() }},
		{"0 0 1 * *", func(q *timequery.Query) *timequery.Query { return q.BeginningOfMonth().NextMonth() }},
		{"0 0 1 1 *", func(q *timequery.Query) *timequery.Query { return q.BeginningOfYear().NextYear() }},
	}

	references := []time.Time{
		time.Date(2019, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2020, time.February, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 13, 45, 30, 0, time.UTC),
		time.Date(2024, time.July, 31, 6, 7, 8, 0, time.UTC),
		time.Date(2025, time.November, 30, 18, 0, 0, 0, time.UTC),
		time.Date(2031, time.June, 8, 0, 0, 0, 0, time.UTC),
	}

	for _, period := range periods {
		expression := cronexpr.MustParse(period.expression)
		t.Run(period.expression, func(t *testing.T) {
			for _, reference := range references {
				want := expression.Next(reference)
				got := period.chain(timequery.New(timequery.WithAsOf(reference))).Time()
				if !got.Equal(want) {
					t.Fatalf("%s: %s != %s", reference, got, want)
				}
			}
		})
	}
}
