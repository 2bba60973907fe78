// Package planner implements the Plan Assembler (C9) and exposes the
// core's single public entry point, Planner.Plan: a pure, synchronous,
// single-invocation computation sequencing C1 (classify) through C9
// (assemble), honoring cancellation between components (spec.md §5).
package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/rahullath/dayplanner/chain"
	"github.com/rahullath/dayplanner/classify"
	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/internal/ids"
	"github.com/rahullath/dayplanner/internal/input"
	"github.com/rahullath/dayplanner/integrity"
	"github.com/rahullath/dayplanner/location"
	"github.com/rahullath/dayplanner/meals"
	"github.com/rahullath/dayplanner/planmodel"
	"github.com/rahullath/dayplanner/ports"
	"github.com/rahullath/dayplanner/wakeramp"
)

// Planner holds the injected collaborators (spec.md §6) a planning
// invocation needs. It carries no mutable state of its own between
// invocations; every field here is read-only infrastructure.
type Planner struct {
	Config   config.PlannerConfig
	Calendar ports.CalendarSource
	Travel   ports.TravelEstimator
	Clock    ports.Clock
	Logger   *zap.Logger
}

// Plan runs one planning invocation for input, sequencing C1 through C9.
// It reads Clock.Now() exactly once, at the start, per spec.md §6/§9.
func (p Planner) Plan(ctx context.Context, in planmodel.PlannerInput) (planmodel.DayPlan, *planmodel.PlanError) {
	if err := input.Validate(in); err != nil {
		return planmodel.DayPlan{}, err
	}

	now := p.Clock.Now()
	var warnings []planmodel.PlanWarning

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	events, err := p.Calendar.Fetch(ctx, in.UserID, in.Date)
	if err != nil {
		events = nil
		warnings = append(warnings, planmodel.PlanWarning{Kind: planmodel.WarnCalendarUnavailable, Detail: err.Error()})
		if p.Logger != nil {
			p.Logger.Warn("calendar source failed, degrading to empty event list", zap.Error(err))
		}
	}

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	classified := classify.Classify(events, p.Config, in.UserID, in.Date, p.Logger)

	for _, a := range classified.Anchors {
		// anchor.end > sleep_time: spec.md §9's open question, resolved as
		// an input error rather than a silent truncation.
		if a.Period.End().After(in.SleepTime) {
			return planmodel.DayPlan{}, planmodel.NewInputError("anchor."+a.ID, "anchor end is after sleep_time")
		}
		if err := a.Validate(p.Config.RequireLocationForMustAttend); err != nil {
			return planmodel.DayPlan{}, planmodel.NewInputError("anchor."+a.ID, err.Error())
		}
	}

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	chains, err2 := p.buildChains(ctx, in, classified.Anchors)
	if err2 != nil {
		return planmodel.DayPlan{}, err2
	}
	chain.SortForProcessing(chains)
	chain.MarkEnvelopeConflicts(chains)
	for _, c := range chains {
		if c.EnvelopeConflict {
			warnings = append(warnings, planmodel.PlanWarning{Kind: planmodel.WarnEnvelopeConflict, ChainID: c.ChainID})
		}
		if c.OverrunBeforePlanStart {
			warnings = append(warnings, planmodel.PlanWarning{Kind: planmodel.WarnOverrunBeforePlanStart, ChainID: c.ChainID})
		}
	}

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	ramp := wakeramp.Generate(in.WakeTime, in.PlanStart, in.Energy, p.Config)
	if ramp.Skipped {
		warnings = append(warnings, planmodel.PlanWarning{Kind: planmodel.WarnWakeRampSkipped, Detail: ramp.SkipReason})
	}

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	locationTimeline, err3 := location.Derive(chains, in.PlanStart, in.SleepTime)
	if err3 != nil {
		return planmodel.DayPlan{}, planmodel.NewInvariantViolated("planner.location", err3.Error())
	}
	homeIntervals := location.HomeIntervals(locationTimeline, p.Config.HomeIntervalMinMinutes)

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	placedMeals, err4 := meals.PlaceAll(in.Date, now, homeIntervals, p.Config)
	if err4 != nil {
		return planmodel.DayPlan{}, planmodel.NewInvariantViolated("planner.meals", err4.Error())
	}
	for _, m := range placedMeals {
		if m.Skipped {
			warnings = append(warnings, planmodel.PlanWarning{Kind: planmodel.WarnMealSkipped, MealKind: m.Kind, Detail: m.SkipReason})
		}
	}

	if err := ctx.Err(); err != nil {
		return planmodel.DayPlan{}, planmodel.NewInputError("context", err.Error())
	}

	blocks, err5 := assemble(ramp, chains, placedMeals, in.PlanStart, in.SleepTime)
	if err5 != nil {
		if pe, ok := err5.(*planmodel.PlanError); ok {
			return planmodel.DayPlan{}, pe
		}
		return planmodel.DayPlan{}, planmodel.NewInvariantViolated("planner.assemble", err5.Error())
	}

	for i := range chains {
		chains[i].Status = integrity.Evaluate(chains[i])
	}

	return planmodel.DayPlan{
		Blocks:           blocks,
		Chains:           chains,
		LocationTimeline: locationTimeline,
		HomeIntervals:    homeIntervals,
		WakeRamp:         ramp,
		Meals:            placedMeals,
		Warnings:         warnings,
	}, nil
}

func (p Planner) buildChains(ctx context.Context, in planmodel.PlannerInput, anchors []planmodel.Anchor) ([]planmodel.ExecutionChain, *planmodel.PlanError) {
	chains := make([]planmodel.ExecutionChain, 0, len(anchors))
	for _, a := range anchors {
		travelMinutes, err := p.Travel.Minutes(ctx, in.CurrentLocation, a.Location)
		if err != nil || travelMinutes <= 0 {
			travelMinutes = p.Config.DefaultTravelMinutes
		}

		template, ok := p.Config.StepTemplatesByAnchorType[a.Type]
		if !ok {
			template = p.Config.StepTemplatesByAnchorType[planmodel.AnchorOther]
		}

		key := ids.AnchorExternalKey(a.ExternalCalendarID, a.Title, a.Period.Start())
		chainID := ids.Chain(in.UserID, in.Date, key)

		c, err := chain.Build(chainID, a, template, travelMinutes, p.Config.RecoveryMinutes, p.Config.ChainDeadlineCushionMinutes, in.PlanStart)
		if err != nil {
			if pe, ok := err.(*planmodel.PlanError); ok {
				return nil, pe
			}
			return nil, planmodel.NewInvariantViolated("planner.buildChains", err.Error())
		}
		chains = append(chains, c)
	}
	return chains, nil
}
