package envelope_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/envelope"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

func mustAnchor(t *testing.T, start, end string) planmodel.Anchor {
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
	return planmodel.Anchor{ID: "a1", Period: p}
}

func TestBuildContiguousSlots(t *testing.T) {
	a := mustAnchor(t, "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	env, err := envelope.Build(a, 20, 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if env.Prep.Minutes() != 15 {
		t.Logf("expected prep 15 min, got %d", env.Prep.Minutes())
		t.Fail()
	}
	if env.TravelThere.Minutes() != 20 || env.TravelBack.Minutes() != 20 {
		t.Log("expected both travel legs to be 20 min")
		t.Fail()
	}
	if !env.AnchorBlock.Equals(a.Period) {
		t.Log("anchor_block must equal the anchor's own period")
		t.Fail()
	}
	if env.Recovery.Minutes() != 10 {
		t.Fail()
	}
	if !env.Prep.IsImmediatelyBefore(env.TravelThere) ||
		!env.TravelThere.IsImmediatelyBefore(env.AnchorBlock) ||
		!env.AnchorBlock.IsImmediatelyBefore(env.TravelBack) ||
		!env.TravelBack.IsImmediatelyBefore(env.Recovery) {
		t.Log("envelope slots must be contiguous")
		t.Fail()
	}
}

func TestBuildZeroTravel(t *testing.T) {
	a := mustAnchor(t, "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	env, err := envelope.Build(a, 0, 10)
	if err != nil {
		t.Fatalf("build with zero travel should succeed: %v", err)
	}
	if env.TravelThere.Minutes() != 0 || env.TravelBack.Minutes() != 0 {
		t.Log("zero travel minutes must produce zero-duration travel legs")
		t.Fail()
	}
}

func TestCompletionDeadline(t *testing.T) {
	a := mustAnchor(t, "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	deadline := envelope.CompletionDeadline(a, 20, 0)
	want, _ := time.Parse(time.RFC3339, "2026-07-30T08:55:00Z") // 10:00 - 20m - 45m
	if !deadline.Equal(want) {
		t.Logf("expected deadline %s, got %s", want, deadline)
		t.Fail()
	}
}

func TestCompletionDeadlineAppliesCushion(t *testing.T) {
	a := mustAnchor(t, "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	deadline := envelope.CompletionDeadline(a, 20, 30)
	want, _ := time.Parse(time.RFC3339, "2026-07-30T08:25:00Z") // 10:00 - 20m - 45m - 30m
	if !deadline.Equal(want) {
		t.Logf("expected deadline %s, got %s", want, deadline)
		t.Fail()
	}
}
