package timequery

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgouldin/timequery/logger"
)

// Query is an immutable chain of transforms together with the reference
// instant it is evaluated against. The result is computed on first use and
// cached; a Query is safe for concurrent use.
type Query struct {
	asOf    time.Time
	hasAsOf bool
	steps   []Step
	clock   func() time.Time
	logger  logger.Logger

	once      sync.Once
	evaluated atomic.Bool
	result    time.Time
}

// Option configures a [Query] created by [New].
type Option func(*Query)

// WithAsOf sets the reference instant of the query.
// Without it, the current time at first evaluation is used.
func WithAsOf(t time.Time) Option {
	return func(q *Query) {
		q.asOf = t
		q.hasAsOf = true
	}
}

// WithClock sets the function used to read the current time when the query
// has no reference instant. The default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(q *Query) {
		if clock != nil {
			q.clock = clock
		}
	}
}

// WithLogger sets the logger for the query and every query chained from it.
// The default is [logger.Default] at the time of logging.
func WithLogger(l logger.Logger) Option {
	return func(q *Query) {
		q.logger = l
	}
}

// New returns a new Query with an empty transform chain.
func New(opts ...Option) *Query {
	q := &Query{clock: time.Now}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Apply returns a new Query with the given transform appended to the chain.
// The receiver is left unchanged. An error matching [ErrInvalidTransformType]
// or [ErrInvalidTransformUnit] is returned if the pair is not a known
// transform.
func (q *Query) Apply(transformType Type, unit Unit) (*Query, error) {
	step := Step{Type: transformType, Unit: unit}
	if err := step.Validate(); err != nil {
		q.log().Debug("Rejected transform", "step", step, "error", err)
		return nil, err
	}
	return q.with(step), nil
}

// MustApply is like [Query.Apply] but panics if the transform is invalid.
func (q *Query) MustApply(transformType Type, unit Unit) *Query {
	next, err := q.Apply(transformType, unit)
	if err != nil {
		panic(err)
	}
	return next
}

// Call appends the transform with the given name, either a transform name
// such as "beginning_of_week" or an alias such as "yesterday".
func (q *Query) Call(name string) (*Query, error) {
	step, ok := Lookup(name)
	if !ok {
		err := invalidNameError(name)
		q.log().Debug("Rejected transform", "name", name, "error", err)
		return nil, err
	}
	return q.Apply(step.Type, step.Unit)
}

// Chain calls [Query.Call] for every name in order. It fails on the first
// unknown name.
func (q *Query) Chain(names ...string) (*Query, error) {
	current := q
	for _, name := range names {
		next, err := current.Call(name)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// with returns a copy of the query, without its cached result, with step
// appended to an independent copy of the chain.
func (q *Query) with(step Step) *Query {
	steps := make([]Step, len(q.steps), len(q.steps)+1)
	copy(steps, q.steps)
	return &Query{
		asOf:    q.asOf,
		hasAsOf: q.hasAsOf,
		steps:   append(steps, step),
		clock:   q.clock,
		logger:  q.logger,
	}
}

// Time evaluates the query and returns the resulting instant.
// The first call fixes the result; later calls return the same value.
func (q *Query) Time() time.Time {
	q.once.Do(func() {
		q.result = q.evaluate()
		q.evaluated.Store(true)
	})
	return q.result
}

// Date returns the calendar date of [Query.Time].
func (q *Query) Date() Date {
	return DateOf(q.Time())
}

// Clock returns the time of day of [Query.Time].
func (q *Query) Clock() Clock {
	return ClockOf(q.Time())
}

// Evaluated reports whether the result has been computed.
func (q *Query) Evaluated() bool {
	return q.evaluated.Load()
}

func (q *Query) evaluate() time.Time {
	t := q.asOf
	if !q.hasAsOf {
		now := q.clock
		if now == nil {
			now = time.Now
		}
		t = now()
	}
	for _, step := range q.steps {
		d := step.delta()
		t = d.Apply(t)
		q.log().Trace("Applied transform", "step", step, "delta", d, "result", t)
	}
	q.log().Trace("Evaluated query", "query", q, "result", t)
	return t
}

// Steps returns a copy of the transform chain.
func (q *Query) Steps() []Step {
	steps := make([]Step, len(q.steps))
	copy(steps, q.steps)
	return steps
}

// AsOf returns the reference instant and whether one was set.
func (q *Query) AsOf() (time.Time, bool) {
	return q.asOf, q.hasAsOf
}

// String returns a description of the query, e.g.
// "Query(as_of=2024-01-15T13:45:30Z, steps=[last_month beginning_of_month])".
func (q *Query) String() string {
	asOf := "now"
	if q.hasAsOf {
		asOf = q.asOf.Format(time.RFC3339Nano)
	}
	steps := make([]string, len(q.steps))
	for i, step := range q.steps {
		steps[i] = step.String()
	}
	return fmt.Sprintf("Query(as_of=%s, steps=[%s])", asOf, strings.Join(steps, " "))
}

func (q *Query) log() logger.Logger {
	if q.logger != nil {
		return q.logger
	}
	return logger.Default()
}
