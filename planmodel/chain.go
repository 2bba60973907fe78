package planmodel

import (
	"time"

	"github.com/rahullath/dayplanner/commons"
	"github.com/rahullath/dayplanner/period"
)

// ChainStep is one concrete action inside a chain (spec.md §3).
type ChainStep struct {
	ID              string
	ChainID         string
	Name            string
	Period          period.Period
	IsRequired      bool
	CanSkipWhenLate bool
	Status          StepStatus
	SkipReason      string
	Role            StepRole
}

// ChainStatus is the lifecycle state of an Execution Chain (spec.md §3).
type ChainStatus string

const (
	ChainPending    ChainStatus = "pending"
	ChainInProgress ChainStatus = "in_progress"
	ChainCompleted  ChainStatus = "completed"
	ChainBroken     ChainStatus = "broken"
)

// ExecutionChain is the ordered sequence of preparatory steps plus envelope
// for one anchor (spec.md §3).
type ExecutionChain struct {
	ChainID                string
	Anchor                 Anchor
	Envelope               CommitmentEnvelope
	Steps                  []ChainStep
	CompletionDeadline     time.Time
	Status                 ChainStatus
	OverrunBeforePlanStart bool
	EnvelopeConflict       bool
}

// ExitGate returns the chain's unique exit-gate step, and false if the
// chain has none (an invariant violation the assembler must catch).
func (c ExecutionChain) ExitGate() (ChainStep, bool) {
	for _, s := range c.Steps {
		if s.Role == RoleExitGate {
			return s, true
		}
	}
	return ChainStep{}, false
}

// AnchorStep returns the chain's anchor interval as a synthetic
// role=anchor ChainStep. The anchor and recovery envelope slots are
// represented as Blocks (not entries in Steps) once a chain is merged into
// a Day Plan (spec.md §4.9); this lets any caller that wants to treat "the
// step sequence" uniformly — template steps plus anchor plus recovery — do
// so without the chain having to duplicate the envelope's own periods.
func (c ExecutionChain) AnchorStep() ChainStep {
	return ChainStep{
		ID:         c.ChainID + "_anchor",
		ChainID:    c.ChainID,
		Name:       c.Anchor.Title,
		Period:     c.Envelope.AnchorBlock,
		IsRequired: true,
		Status:     StatusPending,
		Role:       RoleAnchorStep,
	}
}

// RecoveryStep returns the chain's recovery slot as a synthetic
// role=recovery ChainStep, for the same reason as AnchorStep.
func (c ExecutionChain) RecoveryStep() ChainStep {
	return ChainStep{
		ID:         c.ChainID + "_recovery",
		ChainID:    c.ChainID,
		Name:       "Recovery",
		Period:     c.Envelope.Recovery,
		IsRequired: false,
		Status:     StatusPending,
		Role:       RoleRecoveryStep,
	}
}

// RequiredSteps returns every step flagged IsRequired.
func (c ExecutionChain) RequiredSteps() []ChainStep {
	return commons.SlicesFilter(c.Steps, func(s ChainStep) bool { return s.IsRequired })
}
