// Package input runs the coarse, pre-core validation spec.md §7 names as
// input errors: malformed interval, end <= start, sleep_time <= plan_start,
// unknown energy level. Structural checks use
// github.com/go-playground/validator/v10's validate.Var call style
// (keda-scalers/predictkube_scaler.go's Validate method), not struct tags,
// since PlannerInput's fields need cross-field comparisons a tag alone
// can't express.
package input

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rahullath/dayplanner/planmodel"
)

// Validate checks in PlannerInput everything the core itself should never
// have to: required fields present, energy a known value, and the
// time-ordering invariants spec.md §7 calls input errors. Returns a
// *planmodel.PlanError of kind InputError on the first violation.
func Validate(in planmodel.PlannerInput) *planmodel.PlanError {
	validate := validator.New()

	if err := validate.Var(in.UserID, "required"); err != nil {
		return planmodel.NewInputError("user_id", "must not be empty")
	}
	if err := validate.Var(string(in.Energy), "required,oneof=low medium high"); err != nil {
		return planmodel.NewInputError("energy", fmt.Sprintf("unknown energy level %q", in.Energy))
	}
	if !in.SleepTime.After(in.PlanStart) {
		return planmodel.NewInputError("sleep_time", "sleep_time must be strictly after plan_start")
	}
	if in.WakeTime.After(in.SleepTime) {
		return planmodel.NewInputError("wake_time", "wake_time must not be after sleep_time")
	}
	return nil
}

// ValidateEvent checks one raw calendar event for the malformed-interval
// input error (spec.md §7); classify.Classify already discards malformed
// events per-event, so this entry point exists for callers (e.g. the CLI)
// that want to reject a bad fixture before ever calling the core.
func ValidateEvent(e planmodel.CalendarEvent) *planmodel.PlanError {
	if !e.Start.Before(e.End) {
		return planmodel.NewInputError("calendar_event."+e.ID, "end must be strictly after start")
	}
	return nil
}
