package timequery

import (
	"testing"

	"github.com/dgouldin/timequery/internal/assert"
)

func TestTransformTable(t *testing.T) {
	steps := Transforms()
	assert.Equal(t, len(steps), 18)
	assert.Equal(t, steps[0], Step{BeginningOf, Year})
	assert.Equal(t, steps[6], Step{Next, Year})
	assert.Equal(t, steps[17], Step{Last, Minute})

	seen := make(map[Step]bool)
	for _, step := range steps {
		assert.NoError(t, step.Validate())
		assert.Equal(t, seen[step], false)
		seen[step] = true

		found, ok := Lookup(step.String())
		assert.Equal(t, ok, true)
		assert.Equal(t, found, step)
	}

	for transformType, units := range transforms {
		assert.Equal(t, len(units), len(transformUnits))
		for unit, d := range units {
			assert.Equal(t, seen[Step{transformType, unit}], true)
			assert.Equal(t, d.IsZero(), false)
		}
	}
}

func TestStepValidate(t *testing.T) {
	assert.ErrorIs(t, Step{"first", Day}.Validate(), ErrInvalidTransformType)
	assert.ErrorIs(t, Step{Next, "second"}.Validate(), ErrInvalidTransformUnit)
	assert.ErrorIs(t, Step{}.Validate(), ErrInvalidTransformType)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, Step{BeginningOf, Month}.String(), "beginning_of_month")
	assert.Equal(t, Step{Next, Week}.String(), "next_week")
	assert.Equal(t, Step{Last, Day}.String(), "last_day")
}

func TestLookup(t *testing.T) {
	step, ok := Lookup("midnight")
	assert.Equal(t, ok, true)
	assert.Equal(t, step, Step{BeginningOf, Day})

	step, ok = Lookup("yesterday")
	assert.Equal(t, ok, true)
	assert.Equal(t, step, Step{Last, Day})

	step, ok = Lookup("tomorrow")
	assert.Equal(t, ok, true)
	assert.Equal(t, step, Step{Next, Day})

	_, ok = Lookup("Next_Day")
	assert.Equal(t, ok, false)
	_, ok = Lookup("")
	assert.Equal(t, ok, false)

	assert.Equal(t, len(names), 21)
}

func TestAliasesCopy(t *testing.T) {
	a := Aliases()
	assert.Equal(t, len(a), 3)
	a["midnight"] = Step{Next, Year}
	delete(a, "tomorrow")

	step, ok := Lookup("midnight")
	assert.Equal(t, ok, true)
	assert.Equal(t, step, Step{BeginningOf, Day})
	assert.Equal(t, len(Aliases()), 3)

	for _, step := range Aliases() {
		assert.NoError(t, step.Validate())
	}
}
