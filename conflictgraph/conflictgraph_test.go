package conflictgraph_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/conflictgraph"
	"github.com/rahullath/dayplanner/period"
)

func mustParse(t *testing.T, s, e string) period.Period {
	t.Helper()
	start, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	end, err := time.Parse(time.RFC3339, e)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}
	p, err := period.New(start, end)
	if err != nil {
		t.Fatalf("new period: %v", err)
	}
	return p
}

func TestBuildDetectsOverlap(t *testing.T) {
	spans := []conflictgraph.Span{
		{ChainID: "a", Span: mustParse(t, "2026-07-30T09:00:00Z", "2026-07-30T10:00:00Z")},
		{ChainID: "b", Span: mustParse(t, "2026-07-30T09:30:00Z", "2026-07-30T11:00:00Z")},
		{ChainID: "c", Span: mustParse(t, "2026-07-30T12:00:00Z", "2026-07-30T13:00:00Z")},
	}
	g := conflictgraph.Build(spans)

	if !g.HasConflict("a") {
		t.Log("expected a to conflict with b")
		t.Fail()
	}
	if !g.HasConflict("b") {
		t.Log("expected b to conflict with a")
		t.Fail()
	}
	if g.HasConflict("c") {
		t.Log("c should have no conflicts")
		t.Fail()
	}

	conflicts, found := g.Conflicts("a")
	if !found {
		t.Log("expected a to be registered")
		t.Fail()
	} else if len(conflicts) != 1 || conflicts[0] != "b" {
		t.Logf("expected [b], got %v", conflicts)
		t.Fail()
	}
}

func TestPairsReportsEachConflictOnce(t *testing.T) {
	spans := []conflictgraph.Span{
		{ChainID: "a", Span: mustParse(t, "2026-07-30T09:00:00Z", "2026-07-30T10:00:00Z")},
		{ChainID: "b", Span: mustParse(t, "2026-07-30T09:30:00Z", "2026-07-30T11:00:00Z")},
		{ChainID: "c", Span: mustParse(t, "2026-07-30T12:00:00Z", "2026-07-30T13:00:00Z")},
	}
	g := conflictgraph.Build(spans)

	pairs := g.Pairs()
	if len(pairs) != 1 {
		t.Fatalf("expected exactly 1 conflicting pair, got %v", pairs)
	}
	if pairs[0].A != "a" || pairs[0].B != "b" {
		t.Errorf("expected pair {a, b}, got %+v", pairs[0])
	}
}

func TestBuildAdjacentPeriodsDoNotConflict(t *testing.T) {
	spans := []conflictgraph.Span{
		{ChainID: "a", Span: mustParse(t, "2026-07-30T09:00:00Z", "2026-07-30T10:00:00Z")},
		{ChainID: "b", Span: mustParse(t, "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")},
	}
	g := conflictgraph.Build(spans)

	if g.HasConflict("a") || g.HasConflict("b") {
		t.Log("adjacent (touching) periods must not be reported as conflicts")
		t.Fail()
	}
}
