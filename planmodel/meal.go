package planmodel

import "github.com/rahullath/dayplanner/period"

// MealKind is which of the three daily meals this is.
type MealKind string

const (
	Breakfast MealKind = "breakfast"
	Lunch     MealKind = "lunch"
	Dinner    MealKind = "dinner"
)

// Meal is one placed or skipped meal (spec.md §3/§4.7).
type Meal struct {
	Kind       MealKind
	Period     period.Period // zero when Skipped
	Skipped    bool
	SkipReason string
}
