package integrity_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/integrity"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

func TestEvaluateIntactWhenAllRequiredCompleted(t *testing.T) {
	c := planmodel.ExecutionChain{Steps: []planmodel.ChainStep{
		{IsRequired: true, Status: planmodel.StatusCompleted},
		{IsRequired: false, Status: planmodel.StatusSkipped},
		{IsRequired: true, Status: planmodel.StatusCompleted},
	}}
	if got := integrity.Evaluate(c); got != planmodel.ChainCompleted {
		t.Logf("expected completed, got %s", got)
		t.Fail()
	}
}

func TestEvaluateBrokenWhenRequiredIncomplete(t *testing.T) {
	c := planmodel.ExecutionChain{Steps: []planmodel.ChainStep{
		{IsRequired: true, Status: planmodel.StatusCompleted},
		{IsRequired: true, Status: planmodel.StatusSkipped},
	}}
	if got := integrity.Evaluate(c); got != planmodel.ChainBroken {
		t.Logf("expected broken, got %s", got)
		t.Fail()
	}
}

func TestEvaluateIgnoresLateness(t *testing.T) {
	deadline := time.Date(2026, 7, 30, 8, 45, 0, 0, time.UTC)
	// The exit gate ends 10 minutes after the completion deadline.
	late := period.MustNew(deadline.Add(8*time.Minute), deadline.Add(10*time.Minute))
	c := planmodel.ExecutionChain{CompletionDeadline: deadline, Steps: []planmodel.ChainStep{
		{IsRequired: true, Status: planmodel.StatusCompleted, Role: planmodel.RoleExitGate, Period: late},
	}}
	if got := integrity.Evaluate(c); got != planmodel.ChainCompleted {
		t.Log("timing must never affect the integrity verdict")
		t.Fail()
	}
}
