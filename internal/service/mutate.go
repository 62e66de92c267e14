package service

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/calctl/internal/conflict"
	"github.com/mesh-intelligence/calctl/internal/recur"
	"github.com/mesh-intelligence/calctl/pkg/types"
)

// CreateRequest carries the raw arguments of a create operation. Date and
// Time are strings because they arrive from the CLI unparsed; Repeat is
// "", "none", "daily" or "weekly"; Count only matters when repeating.
type CreateRequest struct {
	Title       string
	Date        string
	Time        string
	Duration    int
	Description string
	Location    string
	Force       bool
	Repeat      string
	Count       int
}

// Create validates the request, expands recurrence, enforces conflicts
// unless forced, and inserts all occurrences as one atomic batch. Returns
// the created events in generation order.
func (s *Service) Create(req CreateRequest) ([]types.Event, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	startDate, err := s.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := normalizeTime(req.Time)
	if err != nil {
		return nil, err
	}
	duration, err := validateDuration(req.Duration)
	if err != nil {
		return nil, err
	}
	kind, err := recur.ParseKind(req.Repeat)
	if err != nil {
		return nil, err
	}

	dates, err := recur.Dates(startDate, kind, req.Count)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var created []types.Event
	for d := range dates {
		e := types.Event{
			ID:          newEventID(),
			Title:       title,
			Description: strings.TrimSpace(req.Description),
			Date:        d,
			StartTime:   startTime,
			DurationMin: duration,
			Location:    strings.TrimSpace(req.Location),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		// Fail-fast: one invalid occurrence sinks the whole series before
		// any persistence is attempted.
		if e.CrossesMidnight() {
			return nil, types.InvalidInputf("event on %s cannot cross midnight (duration too long)", d)
		}
		created = append(created, e)
	}

	if !req.Force {
		existing, err := s.store.LoadAll()
		if err != nil {
			return nil, err
		}
		if pairs := conflict.FindAll(created, existing); len(pairs) > 0 {
			return nil, conflictError(pairs)
		}
	}

	if err := s.store.InsertBatch(created); err != nil {
		return nil, err
	}
	return created, nil
}

// conflictError builds a Conflict error enumerating every colliding pair.
func conflictError(pairs []conflict.Pair) error {
	var b strings.Builder
	b.WriteString("event conflicts with existing events:")
	for _, p := range pairs {
		fmt.Fprintf(&b, "\n- new %q on %s (%s-%s) conflicts with %q (%s-%s)",
			p.Candidate.Title, p.Candidate.Date,
			p.Candidate.StartTime, p.Candidate.EndDT().Format("15:04"),
			p.Existing.Title,
			p.Existing.StartTime, p.Existing.EndDT().Format("15:04"))
	}
	b.WriteString("\nuse --force to schedule anyway")
	return types.Conflictf("%s", b.String())
}

// EditRequest carries the fields of an edit. Nil means "leave unchanged";
// a pointer to the empty string clears an optional field.
type EditRequest struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Duration    *int
	Location    *string
}

// empty reports whether no field was supplied.
func (r EditRequest) empty() bool {
	return r.Title == nil && r.Description == nil && r.Date == nil &&
		r.Time == nil && r.Duration == nil && r.Location == nil
}

// Change records one field's transition in an edit.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Changeset maps document field names to the transitions an edit caused.
// Only fields that actually differed appear.
type Changeset map[string]Change

// Edit rebuilds the event with the supplied fields, re-validates it,
// re-checks conflicts against all other events, and replaces the stored
// record. Returns the new value and the field-level changeset.
func (s *Service) Edit(id string, req EditRequest) (types.Event, Changeset, error) {
	old, err := s.Get(id)
	if err != nil {
		return types.Event{}, nil, err
	}
	if req.empty() {
		return types.Event{}, nil, types.InvalidInputf("no fields provided to edit")
	}

	updated := old
	if req.Title != nil {
		if updated.Title, err = validateTitle(*req.Title); err != nil {
			return types.Event{}, nil, err
		}
	}
	if req.Description != nil {
		updated.Description = strings.TrimSpace(*req.Description)
	}
	if req.Location != nil {
		updated.Location = strings.TrimSpace(*req.Location)
	}
	if req.Date != nil {
		if updated.Date, err = s.ParseDate(*req.Date); err != nil {
			return types.Event{}, nil, err
		}
	}
	if req.Time != nil {
		if updated.StartTime, err = normalizeTime(*req.Time); err != nil {
			return types.Event{}, nil, err
		}
	}
	if req.Duration != nil {
		if updated.DurationMin, err = validateDuration(*req.Duration); err != nil {
			return types.Event{}, nil, err
		}
	}
	updated.UpdatedAt = s.now()

	if updated.CrossesMidnight() {
		return types.Event{}, nil, types.InvalidInputf("event cannot cross midnight (duration too long)")
	}

	all, err := s.store.LoadAll()
	if err != nil {
		return types.Event{}, nil, err
	}
	// Overlaps excludes the event itself by id, so the stored copy of the
	// event under edit never counts as a collision.
	if others := conflict.With(updated, all); len(others) > 0 {
		var b strings.Builder
		b.WriteString("edit would create conflicts with:")
		for _, c := range others {
			fmt.Fprintf(&b, "\n- %s %q (%s-%s)",
				c.ID, c.Title, c.StartTime, c.EndDT().Format("15:04"))
		}
		return types.Event{}, nil, types.Conflictf("%s", b.String())
	}

	if err := s.store.Replace(updated); err != nil {
		return types.Event{}, nil, err
	}
	return updated, diff(old, updated), nil
}

// diff builds the changeset of fields that differ between old and updated,
// keyed by document field name.
func diff(old, updated types.Event) Changeset {
	changes := Changeset{}
	record := func(field string, before, after any) {
		if before != after {
			changes[field] = Change{Old: before, New: after}
		}
	}
	record("title", old.Title, updated.Title)
	record("description", old.Description, updated.Description)
	record("date", old.Date.String(), updated.Date.String())
	record("start_time", old.StartTime, updated.StartTime)
	record("duration_min", old.DurationMin, updated.DurationMin)
	record("location", old.Location, updated.Location)
	return changes
}

// Delete removes the event with the given id and returns it.
func (s *Service) Delete(id string) (types.Event, error) {
	e, err := s.Get(id)
	if err != nil {
		return types.Event{}, err
	}
	ok, err := s.store.DeleteByID(id)
	if err != nil {
		return types.Event{}, err
	}
	if !ok {
		return types.Event{}, types.NotFoundf("event %s not found", id)
	}
	return e, nil
}

// DeleteOnDate removes every event on the given date and returns the
// number removed.
func (s *Service) DeleteOnDate(dateStr string) (int, error) {
	d, err := s.ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return s.store.DeleteWhereDate(d)
}
