// Package integrity implements the Chain Integrity Evaluator (spec.md
// §4.8): a pure, on-demand check of whether a chain's required steps all
// completed. Late completion never affects the verdict.
package integrity

import "github.com/rahullath/dayplanner/planmodel"

// Evaluate returns ChainCompleted if every required step's status is
// StatusCompleted (optional steps may be skipped), ChainBroken otherwise.
func Evaluate(c planmodel.ExecutionChain) planmodel.ChainStatus {
	for _, s := range c.RequiredSteps() {
		if s.Status != planmodel.StatusCompleted {
			return planmodel.ChainBroken
		}
	}
	return planmodel.ChainCompleted
}
