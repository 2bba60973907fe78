// Package ids derives stable identifiers for anchors, chains, and chain
// steps. This is a deliberate departure from the teacher's commons.NewId
// (github.com/google/uuid, random per call): spec.md §4.4's momentum
// preservation property requires that re-invoking the planner for the same
// (user, date) reproduce the same chain_id and step ids, which a random
// UUID can never do. Ids here are derived by hashing the values that
// identify a thing across invocations, never by reading randomness or a
// clock.
package ids

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

func hash(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0}) // separator so ("ab","c") != ("a","bc")
	}
	return hex.EncodeToString(h.Sum(nil))[:24]
}

// Chain derives a chain id from the user, the calendar date, and the
// anchor's external calendar id (or, absent one, its title and start time —
// see AnchorExternalKey). Stable across invocations for the same inputs.
func Chain(userID string, date time.Time, anchorExternalKey string) string {
	return "chain_" + hash(userID, date.UTC().Format("2006-01-02"), anchorExternalKey)
}

// Anchor derives an anchor id the same way a Chain id is derived, so a
// chain and its own anchor share a recognizable lineage without needing a
// back-pointer.
func Anchor(userID string, date time.Time, anchorExternalKey string) string {
	return "anchor_" + hash(userID, date.UTC().Format("2006-01-02"), anchorExternalKey)
}

// Step derives a step id from its owning chain id, its role, and its
// position in the template (the index, not the name, since names can repeat
// e.g. two "Bathroom" steps would otherwise collide).
func Step(chainID string, role string, index int) string {
	return "step_" + hash(chainID, role, fmt.Sprintf("%d", index))
}

// AnchorExternalKey builds the string a Chain/Anchor id is hashed from when
// the upstream calendar event carries no external id: title + ISO start
// time, which is as close to a natural key as a CalendarEvent offers.
func AnchorExternalKey(externalCalendarID, title string, start time.Time) string {
	if externalCalendarID != "" {
		return externalCalendarID
	}
	return title + "@" + start.UTC().Format(time.RFC3339)
}
