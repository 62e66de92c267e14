// Package conflict implements temporal overlap detection between calendar
// events. Overlap is evaluated on half-open intervals [start, end), so
// back-to-back events never conflict.
package conflict

import (
	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Overlaps reports whether a and b occupy overlapping time on the same
// date. An event never overlaps itself (same ID), and events on different
// dates never overlap: cross-midnight events are rejected upstream, so no
// cross-date comparison is needed. The test is strict on both sides, so
// zero-duration events overlap nothing. Symmetric in its arguments.
func Overlaps(a, b types.Event) bool {
	if a.ID == b.ID {
		return false
	}
	if a.Date != b.Date {
		return false
	}
	return a.StartDT().Before(b.EndDT()) && b.StartDT().Before(a.EndDT())
}

// Pair records one collision between a candidate event and an existing one.
type Pair struct {
	Candidate types.Event
	Existing  types.Event
}

// FindAll returns every (candidate, existing) pair that overlaps, in
// candidate-major order. Used to enumerate all collisions in a conflict
// error rather than stopping at the first.
func FindAll(candidates, existing []types.Event) []Pair {
	var pairs []Pair
	for _, c := range candidates {
		for _, e := range existing {
			if Overlaps(c, e) {
				pairs = append(pairs, Pair{Candidate: c, Existing: e})
			}
		}
	}
	return pairs
}

// With returns the subset of events that overlap target, sorted by
// (date, start time, id).
func With(target types.Event, events []types.Event) []types.Event {
	out := []types.Event{}
	for _, e := range events {
		if Overlaps(target, e) {
			out = append(out, e)
		}
	}
	types.SortEvents(out)
	return out
}
