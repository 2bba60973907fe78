// Package planmodel holds the data model of spec.md §3: Anchor, the
// Commitment Envelope, Execution Chain and Chain Step, Wake-Ramp, Location
// Period/Home Interval, Meal, and the final Day Plan.
//
// It follows the teacher's (zefrenchwan/perspectives) tagged-variant idiom
// for "role" fields (models/entities.go's EntityType int constants,
// exhaustively switched rather than dispatched through an interface method,
// per spec.md §9's design note on replacing the source's polymorphic role
// field) and its plain-struct, no-back-pointer style for compound objects
// (models/objects.go), adapted to an arena-free arrangement: a Chain embeds
// its own Anchor and Envelope by value rather than pointing back into a
// shared graph, since one planning invocation never needs to mutate an
// anchor through a chain.
package planmodel

import (
	"fmt"
	"time"

	"github.com/rahullath/dayplanner/period"
)

// AnchorType is the category a calendar event classifies into (spec.md §4.1).
type AnchorType string

const (
	AnchorClass       AnchorType = "class"
	AnchorSeminar     AnchorType = "seminar"
	AnchorWorkshop    AnchorType = "workshop"
	AnchorAppointment AnchorType = "appointment"
	AnchorOther       AnchorType = "other"
)

// CalendarEvent is the raw input to the Anchor Classifier (C1). Start/End are
// plain time.Time, not period.Period: a malformed event (end <= start) must
// be discarded by the classifier rather than rejected at construction, so
// the classifier is the first place period.New is attempted for it.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
}

// Anchor is a fixed external commitment (spec.md §3).
type Anchor struct {
	ID                 string
	Title              string
	Period             period.Period
	Location           string
	Type               AnchorType
	MustAttend         bool
	ExternalCalendarID string
}

// Validate checks the two invariants spec.md §3 places on an Anchor:
// start < end is guaranteed by period.NewNonEmpty, so beyond rejecting an
// unset (zero) period only the must-attend/location coupling is checked
// here, and only when requireLocationForMustAttend is true.
func (a Anchor) Validate(requireLocationForMustAttend bool) error {
	if a.Period.Zero() {
		return fmt.Errorf("anchor %s: empty period", a.ID)
	}
	if requireLocationForMustAttend && a.MustAttend && a.Location == "" {
		return fmt.Errorf("anchor %s: must_attend requires a non-empty location", a.ID)
	}
	return nil
}
