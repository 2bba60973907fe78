// Package ports holds the collaborator contracts the planning core is
// injected with (spec.md §6): CalendarSource, TravelEstimator, and Clock.
// All I/O the core ever touches is hoisted to the caller through these three
// interfaces and awaited before the core runs; the core itself makes no
// calls of its own.
//
// The functional adapters follow the teacher's (zefrenchwan/perspectives)
// commons/events.go NewEventMapper idiom: wrap a plain func in a tiny struct
// that also carries an id, so a caller can build a collaborator inline
// without declaring a named type.
package ports

import (
	"context"
	"time"

	"github.com/rahullath/dayplanner/commons"
	"github.com/rahullath/dayplanner/planmodel"
)

// CalendarSource fetches the raw calendar events for a user's day. Errors
// are the caller's to log; the core treats any error as zero events
// (spec.md §6/§7, graceful degradation).
type CalendarSource interface {
	Fetch(ctx context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error)
}

// TravelEstimator returns a positive minute count for travel between an
// origin and a destination, either of which may be empty when unknown. On
// error the core substitutes PlannerConfig's configured default (spec.md §6).
type TravelEstimator interface {
	Minutes(ctx context.Context, origin, destination string) (int, error)
}

// Clock supplies the single "now" reading a planning invocation is allowed
// (spec.md §6, §9): read once at the invocation boundary, then threaded
// through as a plain time.Time. The core never calls time.Now() itself.
type Clock interface {
	Now() time.Time
}

// funcCalendarSource adapts a plain func to CalendarSource. It also
// satisfies commons.Identifiable, the same way every one of the teacher's
// wrapped-func adapters does, so a caller juggling several collaborators
// can tell two anonymous CalendarSource values apart by id.
type funcCalendarSource struct {
	id    string
	fetch func(ctx context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error)
}

var _ commons.Identifiable = (*funcCalendarSource)(nil)

func (f *funcCalendarSource) Id() string { return f.id }

func (f *funcCalendarSource) Fetch(ctx context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error) {
	if f == nil || f.fetch == nil {
		return nil, nil
	}
	return f.fetch(ctx, userID, date)
}

// NewCalendarSourceFunc decorates a plain function as a CalendarSource.
func NewCalendarSourceFunc(fetch func(ctx context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error)) CalendarSource {
	return &funcCalendarSource{id: commons.NewId(), fetch: fetch}
}

// funcTravelEstimator adapts a plain func to TravelEstimator, satisfying
// commons.Identifiable for the same reason funcCalendarSource does.
type funcTravelEstimator struct {
	id       string
	estimate func(ctx context.Context, origin, destination string) (int, error)
}

var _ commons.Identifiable = (*funcTravelEstimator)(nil)

func (f *funcTravelEstimator) Id() string { return f.id }

func (f *funcTravelEstimator) Minutes(ctx context.Context, origin, destination string) (int, error) {
	if f == nil || f.estimate == nil {
		return 0, nil
	}
	return f.estimate(ctx, origin, destination)
}

// NewTravelEstimatorFunc decorates a plain function as a TravelEstimator.
func NewTravelEstimatorFunc(estimate func(ctx context.Context, origin, destination string) (int, error)) TravelEstimator {
	return &funcTravelEstimator{id: commons.NewId(), estimate: estimate}
}

// FixedClock is a Clock that always reports the same instant, useful for
// tests and for replaying a past invocation.
type FixedClock struct {
	At time.Time
}

// Now implements Clock.
func (c FixedClock) Now() time.Time { return c.At }

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
