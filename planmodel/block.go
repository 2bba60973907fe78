package planmodel

import "github.com/rahullath/dayplanner/period"

// BlockKind tags a Day Plan block (spec.md §3 "Day Plan").
type BlockKind string

const (
	KindRoutine   BlockKind = "routine"
	KindChainStep BlockKind = "chain_step"
	KindAnchor    BlockKind = "anchor"
	KindTravel    BlockKind = "travel"
	KindMeal      BlockKind = "meal"
	KindBuffer    BlockKind = "buffer"
	KindTask      BlockKind = "task"
)

// StepStatus is the execution status of a chain step or a synthesized block.
type StepStatus string

const (
	StatusPending    StepStatus = "pending"
	StatusInProgress StepStatus = "in_progress"
	StatusCompleted  StepStatus = "completed"
	StatusSkipped    StepStatus = "skipped"
)

// StepRole is the tagged role of a step inside a chain (spec.md §3 "Chain
// Step"). Distinct from BlockKind: BlockKind classifies a block in the
// merged Day Plan output, StepRole classifies a step's place within its own
// chain. Dispatch on Role is by exhaustive switch (spec.md §9), never a
// virtual method.
type StepRole int

const (
	RoleChainStep StepRole = iota
	RoleExitGate
	RoleAnchorStep
	RoleRecoveryStep
)

func (r StepRole) String() string {
	switch r {
	case RoleChainStep:
		return "chain_step"
	case RoleExitGate:
		return "exit_gate"
	case RoleAnchorStep:
		return "anchor"
	case RoleRecoveryStep:
		return "recovery"
	default:
		return "unknown"
	}
}

// Block is one entry of the final, gap-free Day Plan.
type Block struct {
	Kind       BlockKind
	Period     period.Period
	Label      string
	Status     StepStatus
	SkipReason string
	ChainID    string // empty for blocks not owned by a chain
}
