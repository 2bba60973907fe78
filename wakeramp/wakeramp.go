// Package wakeramp implements the Wake-Ramp Generator (spec.md §4.5): an
// energy-conditioned morning block, skipped outright when planning starts
// too long after waking.
package wakeramp

import (
	"time"

	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

const skipReason = "Plan started more than the configured threshold after waking"

// Generate builds the Wake-Ramp for a single invocation. wakeTime and
// planStart are both already-captured instants (spec.md §9's single-Clock-
// read discipline); Generate itself reads no clock.
func Generate(wakeTime, planStart time.Time, energy planmodel.Energy, cfg config.PlannerConfig) planmodel.WakeRamp {
	threshold := time.Duration(cfg.WakeRampSkipThresholdMinutes) * time.Minute
	if planStart.After(wakeTime.Add(threshold)) {
		return planmodel.WakeRamp{Skipped: true, SkipReason: skipReason}
	}

	components := cfg.WakeRampComponentsByEnergy[energy]
	start := wakeTime
	if planStart.After(start) {
		start = planStart
	}
	end := start.Add(time.Duration(components.Total()) * time.Minute)

	p, err := period.New(start, end)
	if err != nil {
		return planmodel.WakeRamp{Skipped: true, SkipReason: "invalid wake ramp period: " + err.Error()}
	}

	return planmodel.WakeRamp{
		Period:     p,
		Components: components,
	}
}
