package planmodel

import "github.com/rahullath/dayplanner/period"

// LocationState is whether the planner has the user at home or away
// (spec.md §3/§4.6).
type LocationState string

const (
	AtHome  LocationState = "at_home"
	NotHome LocationState = "not_home"
)

// LocationPeriod is one period of the continuous at_home/not_home timeline.
type LocationPeriod struct {
	Period period.Period
	State  LocationState
}

// HomeInterval is a LocationPeriod with State == AtHome and Duration >= the
// configured minimum (spec.md §3, default 30 minutes), eligible for meal
// placement.
type HomeInterval struct {
	Period period.Period
}
