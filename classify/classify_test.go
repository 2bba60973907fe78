package classify_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/classify"
	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/planmodel"
)

func TestClassifyOrderStopsAtFirstHit(t *testing.T) {
	cfg := config.Default()
	start := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	events := []planmodel.CalendarEvent{
		{ID: "1", Title: "Workshop lecture on Go", Start: start, End: end, Location: "Room 4"},
	}

	result := classify.Classify(events, cfg, "u1", start, nil)
	if len(result.Anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(result.Anchors))
	}
	if result.Anchors[0].Type != planmodel.AnchorWorkshop {
		t.Logf("expected workshop to win over lecture/class, got %s", result.Anchors[0].Type)
		t.Fail()
	}
}

func TestClassifyFallsBackToOther(t *testing.T) {
	cfg := config.Default()
	start := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	events := []planmodel.CalendarEvent{
		{ID: "1", Title: "Team standup", Start: start, End: end},
	}

	result := classify.Classify(events, cfg, "u1", start, nil)
	if len(result.Anchors) != 1 || result.Anchors[0].Type != planmodel.AnchorOther {
		t.Log("expected fallback to 'other'")
		t.Fail()
	}
}

func TestClassifySkipsMalformedInterval(t *testing.T) {
	cfg := config.Default()
	start := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)

	events := []planmodel.CalendarEvent{
		{ID: "1", Title: "Bad event", Start: start, End: start}, // end == start
	}

	result := classify.Classify(events, cfg, "u1", start, nil)
	if len(result.Anchors) != 0 || result.Skipped != 1 {
		t.Logf("expected event to be skipped, got %d anchors, %d skipped", len(result.Anchors), result.Skipped)
		t.Fail()
	}
}

func TestClassifyMustAttendRequiresLocation(t *testing.T) {
	cfg := config.Default()
	start := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	events := []planmodel.CalendarEvent{
		{ID: "1", Title: "Consultation", Start: start, End: end},
		{ID: "2", Title: "Interview", Start: start, End: end, Location: "Office"},
	}

	result := classify.Classify(events, cfg, "u1", start, nil)
	if len(result.Anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(result.Anchors))
	}
	if result.Anchors[0].MustAttend {
		t.Log("event without location must not be must_attend")
		t.Fail()
	}
	if !result.Anchors[1].MustAttend {
		t.Log("event with location must be must_attend")
		t.Fail()
	}
}

func TestClassifyDeterministicIDs(t *testing.T) {
	cfg := config.Default()
	start := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	events := []planmodel.CalendarEvent{
		{ID: "ext-1", Title: "Seminar", Start: start, End: end},
	}

	first := classify.Classify(events, cfg, "u1", start, nil)
	second := classify.Classify(events, cfg, "u1", start, nil)
	if first.Anchors[0].ID != second.Anchors[0].ID {
		t.Log("anchor ids must be stable across invocations for the same input")
		t.Fail()
	}
}
