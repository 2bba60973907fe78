// Package conflictgraph detects overlapping commitment envelopes (spec.md
// §4.3's envelope_conflict warning) using the teacher's DVGraph
// (structures/graphs.go) as an undirected adjacency set: two chains conflict
// if their envelope spans overlap, recorded as a link each way.
package conflictgraph

import (
	"sort"

	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/structures"
)

// Span is the minimal input conflict detection needs about one chain: its
// id and the part of its commitment envelope to compare (chain's callers pass
// the envelope's CoreSpan, travel_there through recovery, prep excluded).
type Span struct {
	ChainID string
	Span    period.Period
}

// Graph reports, per chain id, which other chain ids have an overlapping
// envelope span.
type Graph struct {
	g structures.DVGraph[string, bool]
}

// Build links every pair of spans whose periods overlap. O(n^2) in the
// number of chains, which is always small (a handful of anchors per day).
func Build(spans []Span) Graph {
	g := structures.NewDVGraph[string, bool]()
	for _, s := range spans {
		g.AddNode(s.ChainID)
	}
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].Span.Overlaps(spans[j].Span) {
				g.Link(spans[i].ChainID, spans[j].ChainID, true)
				g.Link(spans[j].ChainID, spans[i].ChainID, true)
			}
		}
	}
	return Graph{g: g}
}

// Conflicts returns the sorted ids of chains whose envelope overlaps the
// given chain's, and false if chainID was never registered.
func (g Graph) Conflicts(chainID string) ([]string, bool) {
	neighbors, found := g.g.Neighbors(chainID)
	if !found {
		return nil, false
	}
	result := make([]string, 0, len(neighbors))
	for id := range neighbors {
		result = append(result, id)
	}
	sort.Strings(result)
	return result, true
}

// HasConflict reports whether chainID overlaps any other chain's envelope.
func (g Graph) HasConflict(chainID string) bool {
	neighbors, found := g.g.Neighbors(chainID)
	return found && len(neighbors) > 0
}

// ConflictPair is one unordered pair of chain ids whose envelopes overlap.
type ConflictPair struct {
	A, B string
}

// Pairs reports every conflicting chain pair exactly once, sorted, for
// diagnostics (spec.md §4.3's envelope_conflict warning names a chain but
// not what it conflicts with). Build links each overlapping pair in both
// directions, so this walks g.g.Edges per node and keeps only A < B to
// collapse each link back down to one pair.
func (g Graph) Pairs() []ConflictPair {
	var pairs []ConflictPair
	for _, node := range g.g.Nodes() {
		edges, found := g.g.Edges(node)
		if !found {
			continue
		}
		for _, e := range edges {
			if e.Source < e.Destination {
				pairs = append(pairs, ConflictPair{A: e.Source, B: e.Destination})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}
