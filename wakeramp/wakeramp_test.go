package wakeramp_test

import (
	"testing"
	"time"

	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/planmodel"
	"github.com/rahullath/dayplanner/wakeramp"
)

func parse(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestGenerateNormalMorning(t *testing.T) {
	cfg := config.Default()
	wake := parse(t, "2026-07-30T07:00:00Z")
	planStart := parse(t, "2026-07-30T07:15:00Z")

	ramp := wakeramp.Generate(wake, planStart, planmodel.EnergyMedium, cfg)
	if ramp.Skipped {
		t.Fatal("expected ramp not to be skipped")
	}
	if ramp.Components.Total() != 90 {
		t.Logf("expected medium energy total 90, got %d", ramp.Components.Total())
		t.Fail()
	}
	if !ramp.Period.Start().Equal(planStart) {
		t.Log("expected ramp to start at max(wake_time, plan_start)")
		t.Fail()
	}
}

func TestGenerateSkipRule(t *testing.T) {
	cfg := config.Default()
	wake := parse(t, "2026-07-30T07:00:00Z")
	planStart := parse(t, "2026-07-30T14:00:00Z") // more than 2h after wake

	ramp := wakeramp.Generate(wake, planStart, planmodel.EnergyHigh, cfg)
	if !ramp.Skipped || ramp.SkipReason == "" {
		t.Log("expected ramp to be skipped with a non-empty reason")
		t.Fail()
	}
}
