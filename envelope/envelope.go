// Package envelope implements the Commitment Envelope Builder (spec.md
// §4.2): given an anchor and a travel-minutes estimate, build the fixed
// five-slot envelope prep -> travel_there -> anchor_block -> travel_back ->
// recovery.
package envelope

import (
	"time"

	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

// PrepMinutes is spec.md §4.2's fixed prep slot length. The recovery slot
// length is not a constant here: it comes from PlannerConfig
// (RecoveryMinutes, default 10) and Build takes it explicitly so it stays a
// pure function of its arguments.
const PrepMinutes = 15

// Build constructs the envelope around anchor using travelMinutes for both
// travel legs and recoveryMinutes for the trailing recovery slot.
// travelMinutes and recoveryMinutes must be >= 0; prep is always 15 minutes
// (spec.md §4.2).
func Build(anchor planmodel.Anchor, travelMinutes, recoveryMinutes int) (planmodel.CommitmentEnvelope, error) {
	travel := time.Duration(travelMinutes) * time.Minute
	recovery := time.Duration(recoveryMinutes) * time.Minute
	prep := time.Duration(PrepMinutes) * time.Minute

	anchorStart := anchor.Period.Start()
	anchorEnd := anchor.Period.End()

	prepPeriod, err := period.New(anchorStart.Add(-travel-prep), anchorStart.Add(-travel))
	if err != nil {
		return planmodel.CommitmentEnvelope{}, err
	}
	travelTherePeriod, err := period.New(anchorStart.Add(-travel), anchorStart)
	if err != nil {
		return planmodel.CommitmentEnvelope{}, err
	}
	travelBackPeriod, err := period.New(anchorEnd, anchorEnd.Add(travel))
	if err != nil {
		return planmodel.CommitmentEnvelope{}, err
	}
	recoveryPeriod, err := period.New(anchorEnd.Add(travel), anchorEnd.Add(travel+recovery))
	if err != nil {
		return planmodel.CommitmentEnvelope{}, err
	}

	env := planmodel.CommitmentEnvelope{
		Prep:        prepPeriod,
		TravelThere: travelTherePeriod,
		AnchorBlock: anchor.Period,
		TravelBack:  travelBackPeriod,
		Recovery:    recoveryPeriod,
	}
	if err := env.Validate(anchor, travelMinutes); err != nil {
		return planmodel.CommitmentEnvelope{}, err
	}
	return env, nil
}

// CompletionDeadline returns spec.md §4.3's chain_completion_deadline:
// anchor.start - travel_there.duration - 45 minutes, widened by
// cushionMinutes (PlannerConfig's ChainDeadlineCushionMinutes) for callers
// who want extra slack folded into the deadline before reflow runs.
func CompletionDeadline(anchor planmodel.Anchor, travelMinutes, cushionMinutes int) time.Time {
	travel := time.Duration(travelMinutes) * time.Minute
	cushion := time.Duration(cushionMinutes) * time.Minute
	return anchor.Period.Start().Add(-travel - 45*time.Minute - cushion)
}
