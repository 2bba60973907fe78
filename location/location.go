// Package location implements the Location-State Tracker (spec.md §4.6):
// derives the at_home/not_home timeline for a day from its chains' envelope
// spans, and answers point queries against it in O(log n).
package location

import (
	"sort"
	"time"

	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

// Derive builds the gap-free at_home/not_home partition of
// [planStart, sleepTime] from chains, which must already be sorted by
// envelope start (chain.SortForProcessing leaves them in anchor-start
// order, which is the same order). Starts at_home at planStart; for each
// chain, at_home up to its travel_there.start (if that gap is positive),
// then not_home through its recovery.end; finally at_home from the last
// cursor to sleepTime.
func Derive(chains []planmodel.ExecutionChain, planStart, sleepTime time.Time) ([]planmodel.LocationPeriod, error) {
	var periods []planmodel.LocationPeriod
	cursor := planStart

	for _, c := range chains {
		travelStart := c.Envelope.TravelThere.Start()
		recoveryEnd := c.Envelope.Recovery.End()

		// A conflicting chain (flagged elsewhere as envelope_conflict) can
		// have a travel_there.start earlier than cursor; clamp so the
		// timeline this package produces is always a valid partition even
		// when upstream chains overlap.
		if travelStart.Before(cursor) {
			travelStart = cursor
		}

		if travelStart.After(cursor) {
			p, err := period.New(cursor, travelStart)
			if err != nil {
				return nil, err
			}
			periods = append(periods, planmodel.LocationPeriod{Period: p, State: planmodel.AtHome})
		}

		if recoveryEnd.After(travelStart) {
			p, err := period.New(travelStart, recoveryEnd)
			if err != nil {
				return nil, err
			}
			periods = append(periods, planmodel.LocationPeriod{Period: p, State: planmodel.NotHome})
			cursor = recoveryEnd
		}
	}

	if sleepTime.After(cursor) {
		p, err := period.New(cursor, sleepTime)
		if err != nil {
			return nil, err
		}
		periods = append(periods, planmodel.LocationPeriod{Period: p, State: planmodel.AtHome})
	}

	return periods, nil
}

// HomeIntervals filters periods to at_home spans of at least minMinutes.
func HomeIntervals(periods []planmodel.LocationPeriod, minMinutes int) []planmodel.HomeInterval {
	var result []planmodel.HomeInterval
	for _, p := range periods {
		if p.State == planmodel.AtHome && p.Period.Minutes() >= minMinutes {
			result = append(result, planmodel.HomeInterval{Period: p.Period})
		}
	}
	return result
}

// Timeline wraps a sorted, gap-free LocationPeriod sequence with O(log n)
// point queries.
type Timeline struct {
	periods []planmodel.LocationPeriod
}

// NewTimeline wraps periods, which must already be in chronological order
// (as Derive returns them).
func NewTimeline(periods []planmodel.LocationPeriod) Timeline {
	return Timeline{periods: periods}
}

// StateAt returns the state of the unique period enclosing t, and false if
// t falls outside every period.
func (tl Timeline) StateAt(t time.Time) (planmodel.LocationState, bool) {
	i := sort.Search(len(tl.periods), func(i int) bool {
		return tl.periods[i].Period.End().After(t)
	})
	if i == len(tl.periods) || !tl.periods[i].Period.Contains(t) {
		return "", false
	}
	return tl.periods[i].State, true
}

// IsHomeInterval reports whether t falls inside some HomeInterval. intervals
// must be sorted chronologically (HomeIntervals returns them that way).
func IsHomeInterval(intervals []planmodel.HomeInterval, t time.Time) bool {
	i := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].Period.End().After(t)
	})
	return i < len(intervals) && intervals[i].Period.Contains(t)
}
