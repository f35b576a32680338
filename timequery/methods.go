package timequery

// BeginningOfYear appends beginning_of_year: midnight on January 1.
func (q *Query) BeginningOfYear() *Query {
	return q.MustApply(BeginningOf, Year)
}

// BeginningOfMonth appends beginning_of_month.
func (q *Query) BeginningOfMonth() *Query {
	return q.MustApply(BeginningOf, Month)
}

// BeginningOfWeek appends beginning_of_week: midnight on the most recent
// Monday, or on the day itself if it is a Monday.
func (q *Query) BeginningOfWeek() *Query {
	return q.MustApply(BeginningOf, Week)
}

// BeginningOfDay appends beginning_of_day.
func (q *Query) BeginningOfDay() *Query {
	return q.MustApply(BeginningOf, Day)
}

// BeginningOfHour appends beginning_of_hour.
func (q *Query) BeginningOfHour() *Query {
	return q.MustApply(BeginningOf, Hour)
}

// BeginningOfMinute appends beginning_of_minute.
func (q *Query) BeginningOfMinute() *Query {
	return q.MustApply(BeginningOf, Minute)
}

// NextYear appends next_year.
func (q *Query) NextYear() *Query {
	return q.MustApply(Next, Year)
}

// NextMonth appends next_month. The day is clamped to the length of the
// target month.
func (q *Query) NextMonth() *Query {
	return q.MustApply(Next, Month)
}

// NextWeek appends next_week.
func (q *Query) NextWeek() *Query {
	return q.MustApply(Next, Week)
}

// NextDay appends next_day.
func (q *Query) NextDay() *Query {
	return q.MustApply(Next, Day)
}

// NextHour appends next_hour.
func (q *Query) NextHour() *Query {
	return q.MustApply(Next, Hour)
}

// NextMinute appends next_minute.
func (q *Query) NextMinute() *Query {
	return q.MustApply(Next, Minute)
}

// LastYear appends last_year.
func (q *Query) LastYear() *Query {
	return q.MustApply(Last, Year)
}

// LastMonth appends last_month. The day is clamped to the length of the
// target month.
func (q *Query) LastMonth() *Query {
	return q.MustApply(Last, Month)
}

// LastWeek appends last_week.
func (q *Query) LastWeek() *Query {
	return q.MustApply(Last, Week)
}

// LastDay appends last_day.
func (q *Query) LastDay() *Query {
	return q.MustApply(Last, Day)
}

// LastHour appends last_hour.
func (q *Query) LastHour() *Query {
	return q.MustApply(Last, Hour)
}

// LastMinute appends last_minute.
func (q *Query) LastMinute() *Query {
	return q.MustApply(Last, Minute)
}

// Midnight is an alias for [Query.BeginningOfDay].
func (q *Query) Midnight() *Query {
	return q.BeginningOfDay()
}

// Yesterday is an alias for [Query.LastDay].
func (q *Query) Yesterday() *Query {
	return q.LastDay()
}

// Tomorrow is an alias for [Query.NextDay].
func (q *Query) Tomorrow() *Query {
	return q.NextDay()
}
