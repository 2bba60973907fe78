package chain_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/chain"
	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

func mustAnchor(t *testing.T, id, start, end string) planmodel.Anchor {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatal(err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatal(err)
	}
	p, err := period.NewNonEmpty(s, e)
	if err != nil {
		t.Fatal(err)
	}
	return planmodel.Anchor{ID: id, Period: p, Type: planmodel.AnchorClass}
}

func TestBuildExitGateEndsAtDeadline(t *testing.T) {
	cfg := config.Default()
	a := mustAnchor(t, "a1", "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	planStart, _ := time.Parse(time.RFC3339, "2026-07-30T06:00:00Z")

	c, err := chain.Build("chain1", a, cfg.StepTemplatesByAnchorType[planmodel.AnchorClass], 20, cfg.RecoveryMinutes, cfg.ChainDeadlineCushionMinutes, planStart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	gate, ok := c.ExitGate()
	if !ok {
		t.Fatal("expected an exit gate step")
	}
	if !gate.Period.End().Equal(c.CompletionDeadline) {
		t.Logf("expected exit gate to end at deadline %s, got %s", c.CompletionDeadline, gate.Period.End())
		t.Fail()
	}
}

func TestBuildStepsAreContiguous(t *testing.T) {
	cfg := config.Default()
	a := mustAnchor(t, "a1", "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	planStart, _ := time.Parse(time.RFC3339, "2026-07-30T06:00:00Z")

	c, err := chain.Build("chain1", a, cfg.StepTemplatesByAnchorType[planmodel.AnchorClass], 20, cfg.RecoveryMinutes, cfg.ChainDeadlineCushionMinutes, planStart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i := 0; i < len(c.Steps)-1; i++ {
		if !c.Steps[i].Period.IsImmediatelyBefore(c.Steps[i+1].Period) {
			t.Logf("steps %d (%s) and %d (%s) are not contiguous", i, c.Steps[i].Period, i+1, c.Steps[i+1].Period)
			t.Fail()
		}
	}
}

func TestBuildOverrunBeforePlanStart(t *testing.T) {
	cfg := config.Default()
	a := mustAnchor(t, "a1", "2026-07-30T07:00:00Z", "2026-07-30T08:00:00Z")
	planStart, _ := time.Parse(time.RFC3339, "2026-07-30T06:30:00Z")

	c, err := chain.Build("chain1", a, cfg.StepTemplatesByAnchorType[planmodel.AnchorClass], 20, cfg.RecoveryMinutes, cfg.ChainDeadlineCushionMinutes, planStart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !c.OverrunBeforePlanStart {
		t.Log("expected overrun flag when earliest step precedes plan start")
		t.Fail()
	}
	if c.Steps[0].Status != planmodel.StatusSkipped || c.Steps[0].SkipReason == "" {
		t.Log("expected earliest step to be materialized as skipped with a reason")
		t.Fail()
	}
}

func TestMarkEnvelopeConflictsFlagsLaterChain(t *testing.T) {
	cfg := config.Default()
	planStart, _ := time.Parse(time.RFC3339, "2026-07-30T06:00:00Z")

	a1 := mustAnchor(t, "a1", "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	a2 := mustAnchor(t, "a2", "2026-07-30T11:05:00Z", "2026-07-30T12:00:00Z")

	c1, err := chain.Build("chain1", a1, cfg.StepTemplatesByAnchorType[planmodel.AnchorClass], 20, cfg.RecoveryMinutes, cfg.ChainDeadlineCushionMinutes, planStart)
	if err != nil {
		t.Fatalf("build c1: %v", err)
	}
	c2, err := chain.Build("chain2", a2, cfg.StepTemplatesByAnchorType[planmodel.AnchorClass], 20, cfg.RecoveryMinutes, cfg.ChainDeadlineCushionMinutes, planStart)
	if err != nil {
		t.Fatalf("build c2: %v", err)
	}

	chains := []planmodel.ExecutionChain{c1, c2}
	chain.SortForProcessing(chains)
	chain.MarkEnvelopeConflicts(chains)

	if chains[1].EnvelopeConflict == false {
		t.Log("expected the later chain's travel_there to conflict with the earlier chain's anchor/travel_back")
		t.Fail()
	}
}
