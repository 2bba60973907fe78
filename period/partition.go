package period

import (
	"fmt"

	"github.com/rahullath/dayplanner/commons"
)

// IsGapFreePartition reports whether periods, taken in order, exactly cover
// [bounds.Start, bounds.End) with no gap and no overlap: periods[i].End ==
// periods[i+1].Start for every i, periods[0].Start == bounds.Start and
// periods[len-1].End == bounds.End.
//
// This is the check behind spec.md's testable properties 1 ("Partition")
// and 4 ("Location partition"); it does not attempt to repair anything, it
// only reports the first violation found, mirroring the teacher's
// fail-fast invariant style (structures/dags.go returns on the first
// detected cycle rather than collecting every one).
func IsGapFreePartition(bounds Period, periods []Period) error {
	if len(periods) == 0 {
		return fmt.Errorf("period: empty partition for bounds %s", bounds)
	}
	if !periods[0].start.Equal(bounds.start) {
		return fmt.Errorf("period: partition starts at %s, expected %s", periods[0].start.Format(commons.TIME_FORMAT), bounds.start.Format(commons.TIME_FORMAT))
	}
	for i := 0; i < len(periods)-1; i++ {
		if !periods[i].IsImmediatelyBefore(periods[i+1]) {
			return fmt.Errorf("period: gap or overlap between %s and %s", periods[i], periods[i+1])
		}
	}
	last := periods[len(periods)-1]
	if !last.end.Equal(bounds.end) {
		return fmt.Errorf("period: partition ends at %s, expected %s", last.end.Format(commons.TIME_FORMAT), bounds.end.Format(commons.TIME_FORMAT))
	}
	return nil
}
