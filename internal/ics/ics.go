// Package ics renders calendar events as an iCalendar document so other
// calendar tools can import them.
package ics

import (
	ical "github.com/arran4/golang-ical"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Build returns an iCalendar with one VEVENT per event. Start and end come
// from the event's derived datetimes; optional fields are emitted only
// when present.
func Build(events []types.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//mesh-intelligence//calctl//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		ve.SetStartAt(e.StartDT())
		ve.SetEndAt(e.EndDT())
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetModifiedAt(e.UpdatedAt)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
	}
	return cal
}

// Serialize renders events as iCalendar text.
func Serialize(events []types.Event) string {
	return Build(events).Serialize()
}
