package types

import (
	"sort"
	"time"
)

// timeLayout is the canonical zero-padded 24-hour wall-clock format.
const timeLayout = "15:04"

// Event represents one scheduled calendar entry. An Event is an immutable
// value: edits construct a new Event carrying the same ID rather than
// mutating the stored one. Identity is the ID alone; every other field may
// change across an edit.
type Event struct {
	ID          string    `json:"id"`         // opaque unique token, assigned at creation
	Title       string    `json:"title"`      // non-empty after trimming
	Description string    `json:"description,omitempty"`
	Date        Date      `json:"date"`       // calendar date, no zone
	StartTime   string    `json:"start_time"` // canonical HH:MM, 24-hour
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StartDT returns the event's start as a naive wall-clock datetime,
// combining Date and StartTime. The value is represented in UTC so that
// datetime arithmetic is pure minute arithmetic: wall-clock times carry no
// zone, and a DST transition in the host zone must not stretch or shrink
// an event's span. StartTime is assumed canonical by construction.
func (e Event) StartDT() time.Time {
	t, err := time.Parse(timeLayout, e.StartTime)
	if err != nil {
		return e.Date.UTC()
	}
	return time.Date(e.Date.Year, e.Date.Month, e.Date.Day,
		t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// EndDT returns the event's end: StartDT plus DurationMin minutes.
func (e Event) EndDT() time.Time {
	return e.StartDT().Add(time.Duration(e.DurationMin) * time.Minute)
}

// CrossesMidnight reports whether the event's end falls outside its start
// date. An event ending exactly at midnight of the next day crosses.
func (e Event) CrossesMidnight() bool {
	return DateOf(e.EndDT()) != e.Date
}

// Less orders events by (date, start time, id), the canonical listing order.
func (e Event) Less(o Event) bool {
	if c := e.Date.Compare(o.Date); c != 0 {
		return c < 0
	}
	if e.StartTime != o.StartTime {
		return e.StartTime < o.StartTime
	}
	return e.ID < o.ID
}

// SortEvents sorts events in place by (date, start time, id).
func SortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Less(events[j])
	})
}
