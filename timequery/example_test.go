package timequery_test

import (
	"fmt"
	"time"

	"github.com/dgouldin/timequery/timequery"
)

func ExampleQuery() {
	asOf := time.Date(2024, time.January, 15, 13, 45, 30, 0, time.UTC)
	q := timequery.New(timequery.WithAsOf(asOf))

	fmt.Println(q.BeginningOfYear().Time())
	fmt.Println(q.NextWeek().Time())
	fmt.Println(q.LastMonth().BeginningOfMonth().Time())
	// Output:
	// 2024-01-01 00:00:00 +0000 UTC
	// 2024-01-22 13:45:30 +0000 UTC
	// 2023-12-01 00:00:00 +0000 UTC
}

func ExampleQuery_Chain() {
	asOf := time.Date(2024, time.January, 15, 13, 45, 30, 0, time.UTC)

	q, err := timequery.New(timequery.WithAsOf(asOf)).Chain("yesterday", "midnight")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q.Date(), q.Clock())

	_, err = q.Chain("next_fortnight")
	fmt.Println(err)
	// Output:
	// 2024-01-14 00:00:00
	// invalid transform: unknown name "next_fortnight"
}
