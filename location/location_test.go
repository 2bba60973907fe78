package location_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/chain"
	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/location"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

func parse(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func mustAnchor(t *testing.T, id, start, end string) planmodel.Anchor {
	t.Helper()
	p, err := period.NewNonEmpty(parse(t, start), parse(t, end))
	if err != nil {
		t.Fatal(err)
	}
	return planmodel.Anchor{ID: id, Period: p, Type: planmodel.AnchorClass}
}

func TestDeriveIsGapFreePartition(t *testing.T) {
	cfg := config.Default()
	planStart := parse(t, "2026-07-30T06:00:00Z")
	sleepTime := parse(t, "2026-07-30T22:00:00Z")

	a := mustAnchor(t, "a1", "2026-07-30T10:00:00Z", "2026-07-30T11:00:00Z")
	c, err := chain.Build("chain1", a, cfg.StepTemplatesByAnchorType[planmodel.AnchorClass], 20, cfg.RecoveryMinutes, cfg.ChainDeadlineCushionMinutes, planStart)
	if err != nil {
		t.Fatal(err)
	}

	periods, err := location.Derive([]planmodel.ExecutionChain{c}, planStart, sleepTime)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	var asPeriods []period.Period
	for _, p := range periods {
		asPeriods = append(asPeriods, p.Period)
	}
	bounds, _ := period.New(planStart, sleepTime)
	if err := period.IsGapFreePartition(bounds, asPeriods); err != nil {
		t.Logf("expected gap-free partition: %v", err)
		t.Fail()
	}

	for i := 0; i < len(periods)-1; i++ {
		if periods[i].State == periods[i+1].State {
			t.Log("adjacent location periods must not share a state")
			t.Fail()
		}
	}
}

func TestHomeIntervalsFiltersShortWindows(t *testing.T) {
	p1, _ := period.New(parse(t, "2026-07-30T06:00:00Z"), parse(t, "2026-07-30T06:10:00Z"))
	p2, _ := period.New(parse(t, "2026-07-30T06:10:00Z"), parse(t, "2026-07-30T08:00:00Z"))
	periods := []planmodel.LocationPeriod{
		{Period: p1, State: planmodel.AtHome},
		{Period: p2, State: planmodel.AtHome},
	}
	intervals := location.HomeIntervals(periods, 30)
	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval >= 30 min, got %d", len(intervals))
	}
	if !location.IsHomeInterval(intervals, parse(t, "2026-07-30T07:00:00Z")) {
		t.Fail()
	}
	if location.IsHomeInterval(intervals, parse(t, "2026-07-30T06:05:00Z")) {
		t.Log("short window should not count as a home interval")
		t.Fail()
	}
}
