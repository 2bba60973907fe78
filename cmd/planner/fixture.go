package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rahullath/dayplanner/planmodel"
	"github.com/rahullath/dayplanner/ports"
)

// fixtureEvent is one raw calendar event as the plan fixture's JSON encodes
// it: plain RFC3339 strings, translated to planmodel.CalendarEvent at load
// time.
type fixtureEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location"`
}

// fixture is the plan subcommand's input file: a PlannerInput plus the
// fixed calendar/travel data a CLI run substitutes for a real calendar
// integration and mapping service (both out of scope per spec.md's
// Non-goals).
type fixture struct {
	UserID          string         `json:"user_id"`
	Date            string         `json:"date"` // "2006-01-02"
	WakeTime        string         `json:"wake_time"`
	SleepTime       string         `json:"sleep_time"`
	PlanStart       string         `json:"plan_start"`
	Energy          string         `json:"energy"`
	CurrentLocation string         `json:"current_location"`
	Now             string         `json:"now"` // the Clock reading; defaults to plan_start
	TravelMinutes   int            `json:"travel_minutes"`
	Events          []fixtureEvent `json:"events"`
}

func loadFixture(path string) (fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f, nil
}

func (f fixture) toPlannerInput() (planmodel.PlannerInput, error) {
	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return planmodel.PlannerInput{}, fmt.Errorf("date: %w", err)
	}
	wake, err := time.Parse(time.RFC3339, f.WakeTime)
	if err != nil {
		return planmodel.PlannerInput{}, fmt.Errorf("wake_time: %w", err)
	}
	sleep, err := time.Parse(time.RFC3339, f.SleepTime)
	if err != nil {
		return planmodel.PlannerInput{}, fmt.Errorf("sleep_time: %w", err)
	}
	planStart, err := time.Parse(time.RFC3339, f.PlanStart)
	if err != nil {
		return planmodel.PlannerInput{}, fmt.Errorf("plan_start: %w", err)
	}
	return planmodel.PlannerInput{
		UserID:          f.UserID,
		Date:            date,
		WakeTime:        wake,
		SleepTime:       sleep,
		PlanStart:       planStart,
		Energy:          planmodel.Energy(f.Energy),
		CurrentLocation: f.CurrentLocation,
	}, nil
}

func (f fixture) clock() (ports.Clock, error) {
	if f.Now == "" {
		return nil, nil
	}
	at, err := time.Parse(time.RFC3339, f.Now)
	if err != nil {
		return nil, fmt.Errorf("now: %w", err)
	}
	return ports.FixedClock{At: at}, nil
}

func (f fixture) calendarEvents() ([]planmodel.CalendarEvent, error) {
	events := make([]planmodel.CalendarEvent, 0, len(f.Events))
	for _, e := range f.Events {
		start, err := time.Parse(time.RFC3339, e.Start)
		if err != nil {
			return nil, fmt.Errorf("event %s start: %w", e.ID, err)
		}
		end, err := time.Parse(time.RFC3339, e.End)
		if err != nil {
			return nil, fmt.Errorf("event %s end: %w", e.ID, err)
		}
		events = append(events, planmodel.CalendarEvent{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Start:       start,
			End:         end,
			Location:    e.Location,
		})
	}
	return events, nil
}

// calendarSource returns a StaticCalendarSource preloaded under the
// fixture's user id and date, unless the fixture's events failed to parse,
// in which case it falls back to a func adapter that always returns the
// load error.
func (f fixture) calendarSource() ports.CalendarSource {
	events, loadErr := f.calendarEvents()
	if loadErr != nil {
		return ports.NewCalendarSourceFunc(func(ctx context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error) {
			return nil, loadErr
		})
	}
	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return ports.NewCalendarSourceFunc(func(ctx context.Context, userID string, date time.Time) ([]planmodel.CalendarEvent, error) {
			return nil, fmt.Errorf("date: %w", err)
		})
	}
	return ports.StaticCalendarSource{
		Events: map[string]map[time.Time][]planmodel.CalendarEvent{
			f.UserID: {date.Truncate(24 * time.Hour): events},
		},
	}
}

// travelEstimator returns a DefaultTravelEstimator configured from the
// fixture's travel_minutes, the CLI's stand-in for a real routing/mapping
// service (SPEC_FULL.md §D).
func (f fixture) travelEstimator() ports.TravelEstimator {
	return ports.DefaultTravelEstimator{Default: f.TravelMinutes}
}
