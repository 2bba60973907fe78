package planmodel

import (
	"fmt"

	"github.com/rahullath/dayplanner/period"
)

// CommitmentEnvelope is the fixed five-role structure around one anchor
// (spec.md §3): prep -> travel_there -> anchor_block -> travel_back ->
// recovery.
type CommitmentEnvelope struct {
	Prep        period.Period
	TravelThere period.Period
	AnchorBlock period.Period
	TravelBack  period.Period
	Recovery    period.Period
}

// Validate checks the envelope's contiguity and sizing invariants
// (spec.md §3, testable property 2).
func (e CommitmentEnvelope) Validate(anchor Anchor, travelMinutes int) error {
	if !e.Prep.IsImmediatelyBefore(e.TravelThere) {
		return fmt.Errorf("envelope: prep.end != travel_there.start (%s / %s)", e.Prep, e.TravelThere)
	}
	if !e.TravelThere.IsImmediatelyBefore(e.AnchorBlock) {
		return fmt.Errorf("envelope: travel_there.end != anchor.start (%s / %s)", e.TravelThere, e.AnchorBlock)
	}
	if !e.AnchorBlock.Equals(anchor.Period) {
		return fmt.Errorf("envelope: anchor_block != anchor period (%s / %s)", e.AnchorBlock, anchor.Period)
	}
	if !e.AnchorBlock.IsImmediatelyBefore(e.TravelBack) {
		return fmt.Errorf("envelope: anchor.end != travel_back.start (%s / %s)", e.AnchorBlock, e.TravelBack)
	}
	if !e.TravelBack.IsImmediatelyBefore(e.Recovery) {
		return fmt.Errorf("envelope: travel_back.end != recovery.start (%s / %s)", e.TravelBack, e.Recovery)
	}
	if e.TravelThere.Minutes() != travelMinutes || e.TravelBack.Minutes() != travelMinutes {
		return fmt.Errorf("envelope: travel legs do not match travel_minutes=%d", travelMinutes)
	}
	return nil
}

// Span returns the envelope's overall period, from prep start to recovery end.
func (e CommitmentEnvelope) Span() period.Period {
	p, _ := period.New(e.Prep.Start(), e.Recovery.End())
	return p
}

// CoreSpan returns the envelope's period from travel_there.start to
// recovery.end, excluding prep. Cross-chain envelope overlap is checked on
// this span, never the full Span: spec.md §4.3 permits a chain's prep to
// overlap a previous chain's recovery, so prep must be excluded from
// conflict detection.
func (e CommitmentEnvelope) CoreSpan() period.Period {
	p, _ := period.New(e.TravelThere.Start(), e.Recovery.End())
	return p
}
