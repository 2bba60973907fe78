// Package classify implements the Anchor Classifier (spec.md §4.1): maps a
// raw CalendarEvent to a typed Anchor, or discards it when its interval is
// malformed.
package classify

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rahullath/dayplanner/internal/config"
	"github.com/rahullath/dayplanner/internal/ids"
	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

// Result is the classifier's output: the anchors it produced, plus a count
// of events it discarded (logged individually, never fatal, per spec.md
// §4.1's failure mode).
type Result struct {
	Anchors []planmodel.Anchor
	Skipped int
}

// Classify maps every event to an Anchor in order, discarding malformed
// ones. userID/date feed the deterministic id derivation so the same event
// produces the same anchor id across invocations (spec.md §4.4).
func Classify(events []planmodel.CalendarEvent, cfg config.PlannerConfig, userID string, date time.Time, logger *zap.Logger) Result {
	var result Result
	for _, e := range events {
		anchor, err := classifyOne(e, cfg, userID, date)
		if err != nil {
			result.Skipped++
			if logger != nil {
				logger.Warn("discarding malformed calendar event",
					zap.String("event_id", e.ID),
					zap.String("title", e.Title),
					zap.Error(err),
				)
			}
			continue
		}
		result.Anchors = append(result.Anchors, anchor)
	}
	return result
}

func classifyOne(e planmodel.CalendarEvent, cfg config.PlannerConfig, userID string, date time.Time) (planmodel.Anchor, error) {
	p, err := period.NewNonEmpty(e.Start, e.End)
	if err != nil {
		return planmodel.Anchor{}, err
	}

	anchorType := classifyType(e.Title, e.Description, cfg)

	mustAttend := cfg.DefaultMustAttend
	if cfg.RequireLocationForMustAttend {
		mustAttend = e.Location != ""
	}

	key := ids.AnchorExternalKey(e.ID, e.Title, e.Start)
	anchor := planmodel.Anchor{
		ID:                 ids.Anchor(userID, date, key),
		Title:              e.Title,
		Period:             p,
		Location:           e.Location,
		Type:               anchorType,
		MustAttend:         mustAttend,
		ExternalCalendarID: e.ID,
	}
	return anchor, nil
}

// classifyType checks each configured anchor type's keyword set, in the
// configured order, stopping at the first hit; falls back to "other"
// (spec.md §4.1).
func classifyType(title, description string, cfg config.PlannerConfig) planmodel.AnchorType {
	haystack := strings.ToLower(title + " " + description)
	for _, t := range cfg.ClassificationOrder {
		for _, keyword := range cfg.ClassificationKeywords[t] {
			if strings.Contains(haystack, strings.ToLower(keyword)) {
				return t
			}
		}
	}
	return planmodel.AnchorOther
}
