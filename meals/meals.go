// Package meals implements the Meal Placer (spec.md §4.7): places breakfast,
// lunch, and dinner inside home intervals, respecting per-kind windows,
// spacing between consecutive meals, and "don't place in the past".
package meals

import (
	"fmt"
	"time"

	"github.com/rahullath/dayplanner/commons"
	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

const (
	reasonNoHomeInterval    = "No home interval"
	reasonWindowInPast      = "Window in past"
	reasonNoFitDueToSpacing = "No fit due to spacing"
)

var order = []planmodel.MealKind{planmodel.Breakfast, planmodel.Lunch, planmodel.Dinner}

// PlaceAll places breakfast, lunch, and dinner in order against
// homeIntervals, using now for the "not in the past" rule and date to
// resolve each meal window's clock times onto an absolute day.
func PlaceAll(date, now time.Time, homeIntervals []planmodel.HomeInterval, cfg config.PlannerConfig) ([]planmodel.Meal, error) {
	var placed []planmodel.Meal
	var prevStart time.Time
	havePrev := false

	for _, kind := range order {
		meal, start, ok, err := placeOne(kind, date, now, homeIntervals, placed, prevStart, havePrev, cfg)
		if err != nil {
			return nil, err
		}
		placed = append(placed, meal)
		if ok {
			prevStart = start
			havePrev = true
		}
	}
	return placed, nil
}

func placeOne(kind planmodel.MealKind, date, now time.Time, homeIntervals []planmodel.HomeInterval, alreadyPlaced []planmodel.Meal, prevStart time.Time, havePrev bool, cfg config.PlannerConfig) (planmodel.Meal, time.Time, bool, error) {
	window := cfg.MealWindows[kind]
	durationMinutes := cfg.MealDurations[kind]
	duration := time.Duration(durationMinutes) * time.Minute
	spacing := time.Duration(cfg.MealMinSpacingMinutes) * time.Minute

	windowStart, err := clockOnDate(date, window.StartClock)
	if err != nil {
		return planmodel.Meal{}, time.Time{}, false, err
	}
	windowEnd, err := clockOnDate(date, window.EndClock)
	if err != nil {
		return planmodel.Meal{}, time.Time{}, false, err
	}
	defaultTime, err := clockOnDate(date, cfg.MealDefaultTimes[kind])
	if err != nil {
		return planmodel.Meal{}, time.Time{}, false, err
	}
	center := clamp(defaultTime, windowStart, windowEnd.Add(-duration))

	sawHomeFit := false
	sawFutureHomeFit := false

	tryCandidate := func(s time.Time) (planmodel.Meal, bool) {
		if s.Before(windowStart) || s.Add(duration).After(windowEnd) {
			return planmodel.Meal{}, false
		}
		p, err := period.New(s, s.Add(duration))
		if err != nil {
			return planmodel.Meal{}, false
		}
		if !fitsHomeInterval(p, homeIntervals) {
			return planmodel.Meal{}, false
		}
		sawHomeFit = true
		if !s.After(now) {
			return planmodel.Meal{}, false
		}
		sawFutureHomeFit = true
		if overlapsAny(p, alreadyPlaced) {
			return planmodel.Meal{}, false
		}
		if havePrev && absDuration(s.Sub(prevStart)) < spacing {
			return planmodel.Meal{}, false
		}
		return planmodel.Meal{Kind: kind, Period: p}, true
	}

	for _, s := range candidateOrder(center, windowStart, windowEnd, duration) {
		if meal, ok := tryCandidate(s); ok {
			return meal, s, true, nil
		}
	}

	reason := reasonNoFitDueToSpacing
	switch {
	case !sawHomeFit:
		reason = reasonNoHomeInterval
	case !sawFutureHomeFit:
		reason = reasonWindowInPast
	}
	return planmodel.Meal{Kind: kind, Skipped: true, SkipReason: reason}, time.Time{}, false, nil
}

// candidateOrder yields center, then +-5min steps outward to +-30min, then a
// full 5-minute sweep of the window (spec.md §4.7 step 3). The ±30-minute
// steps and the window sweep commonly land on the same instant (e.g. when
// center sits near windowStart); duplicates are dropped so tryCandidate
// never re-evaluates the same slot twice.
func candidateOrder(center, windowStart, windowEnd time.Time, duration time.Duration) []time.Time {
	step := 5 * time.Minute
	var result []time.Time
	result = append(result, center)
	for offset := step; offset <= 30*time.Minute; offset += step {
		result = append(result, center.Add(offset), center.Add(-offset))
	}
	last := windowEnd.Add(-duration)
	for s := windowStart; !s.After(last); s = s.Add(step) {
		result = append(result, s)
	}
	return commons.SliceDeduplicateFunc(result, func(a, b time.Time) bool { return a.Equal(b) })
}

func fitsHomeInterval(p period.Period, intervals []planmodel.HomeInterval) bool {
	for _, h := range intervals {
		if h.Period.ContainsPeriod(p) {
			return true
		}
	}
	return false
}

func overlapsAny(p period.Period, meals []planmodel.Meal) bool {
	for _, m := range meals {
		if m.Skipped {
			continue
		}
		if p.Overlaps(m.Period) {
			return true
		}
	}
	return false
}

func clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// clockOnDate parses an "HH:MM" clock string onto date's calendar day, in
// date's own location.
func clockOnDate(date time.Time, clock string) (time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, fmt.Errorf("meals: invalid clock time %q: %w", clock, err)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location()), nil
}
