package planmodel

import "github.com/rahullath/dayplanner/period"

// Energy is the caller-supplied coarse energy level (spec.md §4.5).
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// WakeRampComponents breaks the Wake-Ramp total into its named pieces
// (spec.md §3). Values are minutes.
type WakeRampComponents struct {
	Toilet  int
	Hygiene int
	Shower  int
	Dress   int
	Buffer  int
}

// Total returns the sum of all components.
func (c WakeRampComponents) Total() int {
	return c.Toilet + c.Hygiene + c.Shower + c.Dress + c.Buffer
}

// WakeRamp is the optional leading morning block (spec.md §3/§4.5).
type WakeRamp struct {
	Period     period.Period // zero when Skipped
	Components WakeRampComponents
	Skipped    bool
	SkipReason string
}
