package store

// This file defines the JSON record structures for the event document.
// Required fields decode through pointers so a missing field is
// distinguishable from a zero value and can be reported by name.

import (
	"time"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Timestamp layouts accepted on read. Documents are written with RFC 3339;
// the naive layouts cover documents produced by the predecessor tool.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// document is the root object of the backing file.
type document struct {
	Events []record `json:"events"`
}

// record mirrors one event in the document.
type record struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	DurationMin *int    `json:"duration_min"`
	Location    *string `json:"location,omitempty"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// encode converts an Event to its document record.
func encode(e types.Event) record {
	rec := record{
		ID:          ptr(e.ID),
		Title:       ptr(e.Title),
		Date:        ptr(e.Date.String()),
		StartTime:   ptr(e.StartTime),
		DurationMin: ptr(e.DurationMin),
		CreatedAt:   ptr(e.CreatedAt.Format(time.RFC3339)),
		UpdatedAt:   ptr(e.UpdatedAt.Format(time.RFC3339)),
	}
	if e.Description != "" {
		rec.Description = ptr(e.Description)
	}
	if e.Location != "" {
		rec.Location = ptr(e.Location)
	}
	return rec
}

// decode converts a document record back to an Event. A missing required
// field is a storage error naming the field.
func (r record) decode() (types.Event, error) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"id", r.ID != nil},
		{"title", r.Title != nil},
		{"date", r.Date != nil},
		{"start_time", r.StartTime != nil},
		{"duration_min", r.DurationMin != nil},
		{"created_at", r.CreatedAt != nil},
		{"updated_at", r.UpdatedAt != nil},
	} {
		if !f.ok {
			return types.Event{}, types.Storagef("missing required field %q", f.name)
		}
	}

	d, err := types.ParseDate(*r.Date)
	if err != nil {
		return types.Event{}, types.Storagef("invalid date %q in record %s", *r.Date, *r.ID)
	}
	createdAt, err := parseTimestamp(*r.CreatedAt)
	if err != nil {
		return types.Event{}, types.Storagef("invalid created_at %q in record %s", *r.CreatedAt, *r.ID)
	}
	updatedAt, err := parseTimestamp(*r.UpdatedAt)
	if err != nil {
		return types.Event{}, types.Storagef("invalid updated_at %q in record %s", *r.UpdatedAt, *r.ID)
	}

	e := types.Event{
		ID:          *r.ID,
		Title:       *r.Title,
		Date:        d,
		StartTime:   *r.StartTime,
		DurationMin: *r.DurationMin,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Location != nil {
		e.Location = *r.Location
	}
	return e, nil
}

// parseTimestamp tries each accepted layout in order.
func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func ptr[T any](v T) *T { return &v }
