package commons

import (
	"slices"

	"github.com/google/uuid"
)

// NewId builds a new unique id.
// Two different calls should return two different values.
// Use only where value-stability across invocations does not matter:
// chain/step/anchor ids must come from internal/ids instead (see DESIGN.md).
func NewId() string {
	return uuid.NewString()
}

// SliceDeduplicateFunc returns a slice containing the same elements, just once
func SliceDeduplicateFunc[T any](original []T, equals func(a, b T) bool) []T {
	var result []T
	for _, source := range original {
		if !slices.ContainsFunc(result, func(value T) bool { return equals(source, value) }) {
			result = append(result, source)
		}
	}

	return result
}

// SlicesFilter returns a new slice containing only elements that match the predicate
func SlicesFilter[T any](base []T, keepPredicate func(T) bool) []T {
	var result []T
	for _, element := range base {
		if keepPredicate == nil || keepPredicate(element) {
			result = append(result, element)
		}
	}

	return result
}
