// Package config loads PlannerConfig, the single struct that collects every
// tunable the planning core needs (spec.md §9's redesign note on scattered
// optional fields), from a TOML file via github.com/BurntSushi/toml.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/rahullath/dayplanner/planmodel"
)

// StepTemplateEntry is one row of a chain's reverse-reflow template
// (spec.md §4.3's worked example): a named, fixed-duration step, optional
// and skippable when late, keyed to a Role.
type StepTemplateEntry struct {
	Name            string            `toml:"name"`
	DurationMinutes int               `toml:"duration_minutes"`
	IsRequired      bool              `toml:"is_required"`
	CanSkipWhenLate bool              `toml:"can_skip_when_late"`
	Role            planmodel.StepRole `toml:"-"`
	RoleName        string            `toml:"role"`
}

// MealWindow is the [start, end) clock-time window a meal kind may be
// placed in (spec.md §4.7). Default placement times and durations live in
// PlannerConfig's separate MealDefaultTimes and MealDurations maps.
type MealWindow struct {
	StartClock string `toml:"start_clock"` // "HH:MM"
	EndClock   string `toml:"end_clock"`
}

// PlannerConfig collects every tunable spec.md §9 names in one place.
type PlannerConfig struct {
	// ClassificationKeywords maps each non-"other" AnchorType to its ordered
	// keyword set, checked in classification priority order (spec.md §4.1).
	ClassificationKeywords map[planmodel.AnchorType][]string `toml:"-"`
	ClassificationOrder    []planmodel.AnchorType             `toml:"-"`

	RequireLocationForMustAttend bool `toml:"require_location_for_must_attend"`
	DefaultMustAttend            bool `toml:"default_must_attend"`

	// StepTemplatesByAnchorType is the ordered step template for each anchor
	// type, read leaf-to-root by the reverse reflow engine (spec.md §4.3).
	StepTemplatesByAnchorType map[planmodel.AnchorType][]StepTemplateEntry `toml:"-"`

	MealWindows         map[planmodel.MealKind]MealWindow `toml:"-"`
	MealDefaultTimes    map[planmodel.MealKind]string      `toml:"-"` // "HH:MM"
	MealDurations       map[planmodel.MealKind]int         `toml:"-"` // minutes
	MealMinSpacingMinutes int                              `toml:"meal_min_spacing_minutes"`

	HomeIntervalMinMinutes      int `toml:"home_interval_min_minutes"`
	ChainDeadlineCushionMinutes int `toml:"chain_deadline_cushion_minutes"`
	DefaultTravelMinutes        int `toml:"default_travel_minutes"`
	RecoveryMinutes             int `toml:"recovery_minutes"`
	TransitionBufferMinutes     int `toml:"transition_buffer_minutes"`

	WakeRampComponentsByEnergy  map[planmodel.Energy]planmodel.WakeRampComponents `toml:"-"`
	WakeRampSkipThresholdMinutes int                                             `toml:"wake_ramp_skip_threshold_minutes"`
}

// fileFormat is the literal TOML decoding target: BurntSushi/toml does not
// decode directly into map[CustomStringType], so the file uses plain
// string-keyed tables and Load translates them into PlannerConfig's typed
// maps.
type fileFormat struct {
	RequireLocationForMustAttend bool `toml:"require_location_for_must_attend"`
	DefaultMustAttend            bool `toml:"default_must_attend"`

	ClassificationOrder    []string            `toml:"classification_order"`
	ClassificationKeywords map[string][]string `toml:"classification_keywords"`

	StepTemplatesByAnchorType map[string][]StepTemplateEntry `toml:"step_templates_by_anchor_type"`

	MealWindows        map[string]MealWindow `toml:"meal_windows"`
	MealDefaultTimes   map[string]string     `toml:"meal_default_times"`
	MealDurations      map[string]int        `toml:"meal_durations"`
	MealMinSpacingMinutes int                `toml:"meal_min_spacing_minutes"`

	HomeIntervalMinMinutes      int `toml:"home_interval_min_minutes"`
	ChainDeadlineCushionMinutes int `toml:"chain_deadline_cushion_minutes"`
	DefaultTravelMinutes        int `toml:"default_travel_minutes"`
	RecoveryMinutes             int `toml:"recovery_minutes"`
	TransitionBufferMinutes     int `toml:"transition_buffer_minutes"`

	WakeRampComponentsByEnergy map[string]planmodel.WakeRampComponents `toml:"wake_ramp_components_by_energy"`
	WakeRampSkipThresholdMinutes int                                  `toml:"wake_ramp_skip_threshold_minutes"`
}

// Load reads a PlannerConfig from a TOML file at path.
func Load(path string) (PlannerConfig, error) {
	var raw fileFormat
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return PlannerConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return fromFile(raw), nil
}

func fromFile(raw fileFormat) PlannerConfig {
	cfg := PlannerConfig{
		RequireLocationForMustAttend: raw.RequireLocationForMustAttend,
		DefaultMustAttend:            raw.DefaultMustAttend,
		MealMinSpacingMinutes:        raw.MealMinSpacingMinutes,
		HomeIntervalMinMinutes:       raw.HomeIntervalMinMinutes,
		ChainDeadlineCushionMinutes:  raw.ChainDeadlineCushionMinutes,
		DefaultTravelMinutes:         raw.DefaultTravelMinutes,
		RecoveryMinutes:              raw.RecoveryMinutes,
		TransitionBufferMinutes:      raw.TransitionBufferMinutes,
		WakeRampSkipThresholdMinutes: raw.WakeRampSkipThresholdMinutes,

		ClassificationKeywords:    make(map[planmodel.AnchorType][]string, len(raw.ClassificationKeywords)),
		StepTemplatesByAnchorType: make(map[planmodel.AnchorType][]StepTemplateEntry, len(raw.StepTemplatesByAnchorType)),
		MealWindows:               make(map[planmodel.MealKind]MealWindow, len(raw.MealWindows)),
		MealDefaultTimes:          make(map[planmodel.MealKind]string, len(raw.MealDefaultTimes)),
		MealDurations:             make(map[planmodel.MealKind]int, len(raw.MealDurations)),
		WakeRampComponentsByEnergy: make(map[planmodel.Energy]planmodel.WakeRampComponents, len(raw.WakeRampComponentsByEnergy)),
	}

	for _, t := range raw.ClassificationOrder {
		cfg.ClassificationOrder = append(cfg.ClassificationOrder, planmodel.AnchorType(t))
	}
	for k, v := range raw.ClassificationKeywords {
		cfg.ClassificationKeywords[planmodel.AnchorType(k)] = v
	}
	for k, v := range raw.StepTemplatesByAnchorType {
		for i := range v {
			v[i].Role = roleFromName(v[i].RoleName)
		}
		cfg.StepTemplatesByAnchorType[planmodel.AnchorType(k)] = v
	}
	for k, v := range raw.MealWindows {
		cfg.MealWindows[planmodel.MealKind(k)] = v
	}
	for k, v := range raw.MealDefaultTimes {
		cfg.MealDefaultTimes[planmodel.MealKind(k)] = v
	}
	for k, v := range raw.MealDurations {
		cfg.MealDurations[planmodel.MealKind(k)] = v
	}
	for k, v := range raw.WakeRampComponentsByEnergy {
		cfg.WakeRampComponentsByEnergy[planmodel.Energy(k)] = v
	}
	return cfg
}

func roleFromName(name string) planmodel.StepRole {
	switch name {
	case "exit_gate":
		return planmodel.RoleExitGate
	case "anchor":
		return planmodel.RoleAnchorStep
	case "recovery":
		return planmodel.RoleRecoveryStep
	default:
		return planmodel.RoleChainStep
	}
}

// Default returns the built-in PlannerConfig matching spec.md's worked
// examples (§4.1's keyword sets, §4.3's feed-cat-to-recovery template,
// §4.5's energy-conditioned wake ramp, §4.7's meal windows/durations), for
// callers that don't supply their own TOML file.
func Default() PlannerConfig {
	return PlannerConfig{
		RequireLocationForMustAttend: true,
		DefaultMustAttend:            false,

		ClassificationOrder: []planmodel.AnchorType{
			planmodel.AnchorWorkshop,
			planmodel.AnchorClass,
			planmodel.AnchorSeminar,
			planmodel.AnchorAppointment,
		},
		ClassificationKeywords: map[planmodel.AnchorType][]string{
			planmodel.AnchorWorkshop:    {"workshop", "training", "bootcamp"},
			planmodel.AnchorClass:       {"lecture", "class", "tutorial", "lab", "practical"},
			planmodel.AnchorSeminar:     {"seminar", "session"},
			planmodel.AnchorAppointment: {"appointment", "meeting", "consultation", "interview"},
		},

		StepTemplatesByAnchorType: defaultStepTemplates(),

		MealWindows: map[planmodel.MealKind]MealWindow{
			planmodel.Breakfast: {StartClock: "06:30", EndClock: "11:30"},
			planmodel.Lunch:     {StartClock: "11:30", EndClock: "15:30"},
			planmodel.Dinner:    {StartClock: "17:00", EndClock: "21:30"},
		},
		MealDefaultTimes: map[planmodel.MealKind]string{
			planmodel.Breakfast: "09:30",
			planmodel.Lunch:     "13:00",
			planmodel.Dinner:    "19:00",
		},
		MealDurations: map[planmodel.MealKind]int{
			planmodel.Breakfast: 15,
			planmodel.Lunch:     30,
			planmodel.Dinner:    45,
		},
		MealMinSpacingMinutes: 180,

		HomeIntervalMinMinutes:      30,
		ChainDeadlineCushionMinutes: 0,
		DefaultTravelMinutes:        30,
		RecoveryMinutes:             10,
		TransitionBufferMinutes:     5,

		WakeRampComponentsByEnergy: map[planmodel.Energy]planmodel.WakeRampComponents{
			planmodel.EnergyLow:    {Toilet: 10, Hygiene: 30, Shower: 40, Dress: 20, Buffer: 20},
			planmodel.EnergyMedium: {Toilet: 10, Hygiene: 20, Shower: 30, Dress: 15, Buffer: 15},
			planmodel.EnergyHigh:   {Toilet: 5, Hygiene: 15, Shower: 25, Dress: 15, Buffer: 15},
		},
		WakeRampSkipThresholdMinutes: 120,
	}
}

// defaultStepTemplates is spec.md §4.3's worked example, reverse order
// already folded into forward order here; the reflow engine reads it
// forward-to-back and assigns times back-to-front from the deadline.
func defaultStepTemplates() map[planmodel.AnchorType][]StepTemplateEntry {
	template := []StepTemplateEntry{
		{Name: "Feed cat", DurationMinutes: 5, IsRequired: true, Role: planmodel.RoleChainStep},
		{Name: "Bathroom", DurationMinutes: 10, IsRequired: true, Role: planmodel.RoleChainStep},
		{Name: "Hygiene", DurationMinutes: 5, IsRequired: true, Role: planmodel.RoleChainStep},
		{Name: "Shower", DurationMinutes: 15, IsRequired: false, CanSkipWhenLate: true, Role: planmodel.RoleChainStep},
		{Name: "Get dressed", DurationMinutes: 10, IsRequired: true, Role: planmodel.RoleChainStep},
		{Name: "Pack bag", DurationMinutes: 10, IsRequired: true, Role: planmodel.RoleChainStep},
		{Name: "Exit readiness check", DurationMinutes: 2, IsRequired: true, Role: planmodel.RoleExitGate},
		{Name: "Leave house", DurationMinutes: 0, IsRequired: true, Role: planmodel.RoleChainStep},
	}
	byType := make(map[planmodel.AnchorType][]StepTemplateEntry, 5)
	for _, t := range []planmodel.AnchorType{
		planmodel.AnchorClass, planmodel.AnchorSeminar, planmodel.AnchorWorkshop,
		planmodel.AnchorAppointment, planmodel.AnchorOther,
	} {
		cp := make([]StepTemplateEntry, len(template))
		copy(cp, template)
		byType[t] = cp
	}
	return byType
}
