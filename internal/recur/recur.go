// Package recur expands a recurring creation request into the sequence of
// calendar dates its occurrences fall on. Only fixed daily and weekly steps
// are supported; anything richer belongs to a different tool.
package recur

import (
	"iter"

	"github.com/teambition/rrule-go"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Kind selects the recurrence step between successive occurrences.
type Kind int

const (
	// KindNone produces exactly one occurrence regardless of count.
	KindNone Kind = iota
	// KindDaily steps one calendar day per occurrence.
	KindDaily
	// KindWeekly steps seven calendar days per occurrence.
	KindWeekly
)

// ParseKind maps a caller-supplied repeat flag to a Kind. The empty string
// and "none" both mean no recurrence.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "none":
		return KindNone, nil
	case "daily":
		return KindDaily, nil
	case "weekly":
		return KindWeekly, nil
	default:
		return 0, types.InvalidInputf("invalid repeat %q (expected daily or weekly)", s)
	}
}

// String returns the flag spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindDaily:
		return "daily"
	case KindWeekly:
		return "weekly"
	default:
		return "none"
	}
}

// Dates returns a finite, restartable sequence of the dates a recurring
// request expands to: count dates starting at start, stepped by the kind.
// KindNone forces exactly one occurrence; the other kinds require a
// positive count. Stepping runs over an RRULE with Dtstart at UTC midnight,
// so each step is an exact calendar day and year boundaries roll correctly.
func Dates(start types.Date, kind Kind, count int) (iter.Seq[types.Date], error) {
	if kind == KindNone {
		return func(yield func(types.Date) bool) {
			yield(start)
		}, nil
	}
	if count <= 0 {
		return nil, types.InvalidInputf("count must be a positive integer")
	}

	freq := rrule.DAILY
	if kind == KindWeekly {
		freq = rrule.WEEKLY
	}
	opt := rrule.ROption{
		Freq:    freq,
		Count:   count,
		Dtstart: start.UTC(),
	}
	// Construct once up front so option errors surface before iteration.
	if _, err := rrule.NewRRule(opt); err != nil {
		return nil, types.InvalidInputf("invalid recurrence: %v", err)
	}

	return func(yield func(types.Date) bool) {
		// Fresh rule per range-over so the sequence is restartable.
		r, err := rrule.NewRRule(opt)
		if err != nil {
			return
		}
		next := r.Iterator()
		for {
			t, ok := next()
			if !ok {
				return
			}
			if !yield(types.DateOf(t.UTC())) {
				return
			}
		}
	}, nil
}
