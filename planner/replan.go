package planner

import (
	"github.com/rahullath/dayplanner/integrity"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

// StepOutcome is one step-completion update arriving after a Day Plan was
// issued: spec.md §4.8's "step outcomes arrive later" case, the input to
// C8's Chain Integrity Evaluator.
type StepOutcome struct {
	StepID string
	Status planmodel.StepStatus
}

// Replan applies outcomes to a previously-issued DayPlan without
// re-deriving any chain/step/anchor id or re-running C1-C7: it mutates only
// the named steps' Status, re-evaluates each touched chain's ChainStatus
// (C8), and mirrors the same status onto the matching Block so the merged
// view stays consistent. A fresh Plan call would reproduce the same ids and
// times under spec.md §4.4's momentum-preservation rule, but would also
// discard any outcome already recorded; Replan exists so a caller never has
// to re-run C1-C7 just to record a completed step.
func Replan(prior planmodel.DayPlan, outcomes []StepOutcome) planmodel.DayPlan {
	statusByStepID := make(map[string]planmodel.StepStatus, len(outcomes))
	for _, o := range outcomes {
		statusByStepID[o.StepID] = o.Status
	}

	touched := make(map[string]bool)

	for i := range prior.Chains {
		c := &prior.Chains[i]
		for j := range c.Steps {
			if status, ok := statusByStepID[c.Steps[j].ID]; ok {
				c.Steps[j].Status = status
				touched[c.ChainID] = true
				mirrorBlockStatus(prior.Blocks, c.ChainID, c.Steps[j].Period, status)
			}
		}
		if status, ok := statusByStepID[c.AnchorStep().ID]; ok {
			touched[c.ChainID] = true
			mirrorBlockStatus(prior.Blocks, c.ChainID, c.Envelope.AnchorBlock, status)
		}
		if status, ok := statusByStepID[c.RecoveryStep().ID]; ok {
			touched[c.ChainID] = true
			mirrorBlockStatus(prior.Blocks, c.ChainID, c.Envelope.Recovery, status)
		}
	}

	for i := range prior.Chains {
		c := &prior.Chains[i]
		if touched[c.ChainID] {
			c.Status = integrity.Evaluate(*c)
		}
	}

	return prior
}

// mirrorBlockStatus finds the Block belonging to chainID whose Period
// matches p exactly and copies status onto it, keeping the merged Day Plan
// view in sync with the chain it was assembled from.
func mirrorBlockStatus(blocks []planmodel.Block, chainID string, p period.Period, status planmodel.StepStatus) {
	for i := range blocks {
		if blocks[i].ChainID == chainID && blocks[i].Period.Equals(p) {
			blocks[i].Status = status
			return
		}
	}
}
