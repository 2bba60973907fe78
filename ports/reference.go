package ports

import (
	"context"
	"time"

	"github.com/rahullath/dayplanner/planmodel"
)

// StaticCalendarSource is a CalendarSource backed by an in-memory, caller-
// populated list of events, grouped by user id and calendar date. It exists
// for tests, fixtures, and the CLI (SPEC_FULL.md §A/§D); production callers
// are expected to supply their own CalendarSource backed by a real fetch.
type StaticCalendarSource struct {
	// Events maps userID -> calendar date (truncated to day) -> events.
	Events map[string]map[time.Time][]planmodel.CalendarEvent
}

// Fetch implements CalendarSource.
func (s StaticCalendarSource) Fetch(_ context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error) {
	byDate, ok := s.Events[userID]
	if !ok {
		return nil, nil
	}
	day := date.Truncate(24 * time.Hour)
	return byDate[day], nil
}

// DefaultTravelEstimator is a TravelEstimator that returns a single
// configured minute count regardless of origin/destination. It models the
// "no real routing engine wired up" case named in SPEC_FULL.md §D; a caller
// wiring a real estimator (maps API, precomputed matrix) replaces it
// wholesale rather than extending it.
type DefaultTravelEstimator struct {
	Default int
}

// Minutes implements TravelEstimator.
func (d DefaultTravelEstimator) Minutes(_ context.Context, _, _ string) (int, error) {
	if d.Default <= 0 {
		return 30, nil
	}
	return d.Default, nil
}
