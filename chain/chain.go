// Package chain implements the Chain Step Composer and Reverse Reflow
// Engine (spec.md §4.3): instantiates a chain's steps from a template,
// laying out the steps up to and including the exit gate by folding backwards from
// the chain completion deadline, then placing any trailing steps (the
// worked example's "Leave house") forward from the deadline.
package chain

import (
	"sort"
	"time"

	"github.com/rahullath/dayplanner/envelope"
	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/internal/ids"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

const occurredBeforePlanStart = "Occurred before plan start"

// Build composes one Execution Chain for anchor: the envelope (C2), the
// reverse-reflowed step list (C3+C4), and the overrun-before-plan-start
// policy. chainID is assumed already deterministically derived by the
// caller (internal/ids), since the same anchor must keep the same chain id
// across invocations (spec.md §4.4).
func Build(chainID string, anchor planmodel.Anchor, template []config.StepTemplateEntry, travelMinutes, recoveryMinutes, deadlineCushionMinutes int, planStart time.Time) (planmodel.ExecutionChain, error) {
	env, err := envelope.Build(anchor, travelMinutes, recoveryMinutes)
	if err != nil {
		return planmodel.ExecutionChain{}, err
	}
	deadline := envelope.CompletionDeadline(anchor, travelMinutes, deadlineCushionMinutes)

	steps, err := reflow(chainID, template, deadline)
	if err != nil {
		return planmodel.ExecutionChain{}, err
	}

	c := planmodel.ExecutionChain{
		ChainID:            chainID,
		Anchor:             anchor,
		Envelope:           env,
		Steps:              steps,
		CompletionDeadline: deadline,
		Status:             planmodel.ChainPending,
	}

	applyOverrunPolicy(&c, planStart)
	return c, nil
}

// reflow splits template at its exit-gate entry, folds the steps up to and
// including the exit gate backwards from deadline, then lays out any
// trailing steps (after the exit gate) forward from deadline. Each fold
// fills a fresh slice using its own function-local cursor; the two slices
// are then concatenated, so no cursor is shared between the folds or with
// the caller (spec.md §9's redesign note).
func reflow(chainID string, template []config.StepTemplateEntry, deadline time.Time) ([]planmodel.ChainStep, error) {
	gateIdx := -1
	for i, t := range template {
		if t.Role == planmodel.RoleExitGate {
			gateIdx = i
			break
		}
	}
	if gateIdx < 0 {
		return nil, &planmodel.PlanError{Kind: planmodel.InvariantViolated, Location: "chain.reflow", Detail: "template has no exit_gate step"}
	}

	preGate := template[:gateIdx+1]
	postGate := template[gateIdx+1:]

	preSteps := foldBackward(chainID, preGate, deadline)
	postSteps := foldForward(chainID, postGate, deadline, len(preSteps))

	return append(preSteps, postSteps...), nil
}

// foldBackward lays preGate out so the last entry (the exit gate) ends
// exactly at deadline, walking backwards: the classic reverse-reflow.
func foldBackward(chainID string, preGate []config.StepTemplateEntry, deadline time.Time) []planmodel.ChainStep {
	result := make([]planmodel.ChainStep, len(preGate))
	cursor := deadline
	for i := len(preGate) - 1; i >= 0; i-- {
		entry := preGate[i]
		end := cursor
		start := end.Add(-time.Duration(entry.DurationMinutes) * time.Minute)
		p, _ := period.New(start, end)
		result[i] = planmodel.ChainStep{
			ID:              ids.Step(chainID, entry.Role.String(), i),
			ChainID:         chainID,
			Name:            entry.Name,
			Period:          p,
			IsRequired:      entry.IsRequired,
			CanSkipWhenLate: entry.CanSkipWhenLate,
			Status:          planmodel.StatusPending,
			Role:            entry.Role,
		}
		cursor = start
	}
	return result
}

// foldForward lays postGate out starting exactly at from, walking forward.
// indexOffset keeps step ids distinct from the preGate steps already built.
func foldForward(chainID string, postGate []config.StepTemplateEntry, from time.Time, indexOffset int) []planmodel.ChainStep {
	result := make([]planmodel.ChainStep, len(postGate))
	cursor := from
	for i, entry := range postGate {
		start := cursor
		end := start.Add(time.Duration(entry.DurationMinutes) * time.Minute)
		p, _ := period.New(start, end)
		result[i] = planmodel.ChainStep{
			ID:              ids.Step(chainID, entry.Role.String(), indexOffset+i),
			ChainID:         chainID,
			Name:            entry.Name,
			Period:          p,
			IsRequired:      entry.IsRequired,
			CanSkipWhenLate: entry.CanSkipWhenLate,
			Status:          planmodel.StatusPending,
			Role:            entry.Role,
		}
		cursor = end
	}
	return result
}

// applyOverrunPolicy implements spec.md §4.3's edge case: if the earliest
// step starts before planStart, flag the chain and materialize every step
// whose end is still <= planStart as skipped.
func applyOverrunPolicy(c *planmodel.ExecutionChain, planStart time.Time) {
	if len(c.Steps) == 0 {
		return
	}
	if !c.Steps[0].Period.Start().Before(planStart) {
		return
	}
	c.OverrunBeforePlanStart = true
	for i := range c.Steps {
		if !c.Steps[i].Period.End().After(planStart) {
			c.Steps[i].Status = planmodel.StatusSkipped
			c.Steps[i].SkipReason = occurredBeforePlanStart
		}
	}
}

// SortForProcessing orders chains the way spec.md §4.3 requires downstream
// components to see them: by anchor start ascending, ties broken by anchor
// end ascending, then by anchor id lexicographic.
func SortForProcessing(chains []planmodel.ExecutionChain) {
	sort.Slice(chains, func(i, j int) bool {
		a, b := chains[i].Anchor, chains[j].Anchor
		if !a.Period.Start().Equal(b.Period.Start()) {
			return a.Period.Start().Before(b.Period.Start())
		}
		if !a.Period.End().Equal(b.Period.End()) {
			return a.Period.End().Before(b.Period.End())
		}
		return a.ID < b.ID
	})
}
