package chain

import (
	"github.com/rahullath/dayplanner/conflictgraph"
	"github.com/rahullath/dayplanner/planmodel"
)

// MarkEnvelopeConflicts flags EnvelopeConflict on every chain whose envelope
// core span (travel_there through recovery, prep excluded) overlaps an
// earlier chain's. chains must already be ordered the way
// SortForProcessing leaves them; "earlier" means lower index here, mirroring
// spec.md §4.3's "the later chain is flagged" rule.
func MarkEnvelopeConflicts(chains []planmodel.ExecutionChain) {
	graph := buildConflictGraph(chains)
	indexOf := make(map[string]int, len(chains))
	for i, c := range chains {
		indexOf[c.ChainID] = i
	}

	for i := range chains {
		conflicts, found := graph.Conflicts(chains[i].ChainID)
		if !found {
			continue
		}
		for _, otherID := range conflicts {
			if indexOf[otherID] < i {
				chains[i].EnvelopeConflict = true
				break
			}
		}
	}
}

// ConflictPairs reports every pair of chains whose envelopes overlap, for
// callers (the CLI's plan output) that want to show which chains conflict
// with which rather than just each chain's own EnvelopeConflict flag.
func ConflictPairs(chains []planmodel.ExecutionChain) []conflictgraph.ConflictPair {
	return buildConflictGraph(chains).Pairs()
}

func buildConflictGraph(chains []planmodel.ExecutionChain) conflictgraph.Graph {
	spans := make([]conflictgraph.Span, len(chains))
	for i, c := range chains {
		spans[i] = conflictgraph.Span{ChainID: c.ChainID, Span: c.Envelope.CoreSpan()}
	}
	return conflictgraph.Build(spans)
}
