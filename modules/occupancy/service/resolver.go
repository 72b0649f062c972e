package service

import (
	"roomboard/modules/occupancy/entity"
)

// Resolve picks the current and next occupancy from the day's candidates.
//
// candidates must be the full interval set for one room on one calendar day,
// in ascending start order; the caller has already scoped them to the room.
// reference is the instant treated as "now", in epoch seconds.
//
// Current is the first candidate whose range contains reference, inclusive
// on both bounds: an instant equal to an interval's end still counts.
// Next is the first candidate whose start lies strictly after reference.
// The two selections are independent passes; an interval can fail as
// current and still win as next. Overlapping candidates are not merged or
// reconciled: the first containment match in input order wins, which also
// makes duplicated rows behave as a single logical interval. A role with
// no match stays nil.
func Resolve(candidates []entity.Interval, reference int64) entity.ResolvedOccupancy {
	var resolved entity.ResolvedOccupancy

	for i := range candidates {
		if candidates[i].Contains(reference) {
			resolved.Current = &candidates[i]
			break
		}
	}

	for i := range candidates {
		if candidates[i].Start > reference {
			resolved.Next = &candidates[i]
			break
		}
	}

	return resolved
}
