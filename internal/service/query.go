package service

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/calctl/internal/conflict"
	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Get returns the event with the given id.
func (s *Service) Get(id string) (types.Event, error) {
	e, ok, err := s.store.GetByID(id)
	if err != nil {
		return types.Event{}, err
	}
	if !ok {
		return types.Event{}, types.NotFoundf("event %s not found", id)
	}
	return e, nil
}

// GetWithConflicts returns the event plus every stored event that overlaps
// it, sorted by (date, start time, id).
func (s *Service) GetWithConflicts(id string) (types.Event, []types.Event, error) {
	e, err := s.Get(id)
	if err != nil {
		return types.Event{}, nil, err
	}
	all, err := s.store.LoadAll()
	if err != nil {
		return types.Event{}, nil, err
	}
	return e, conflict.With(e, all), nil
}

// ListFilter selects which events List returns. Precedence: Today, then
// Week, then an explicit From/To range; with none set, everything from
// today onward. From and To are raw date arguments; either may be empty
// for an open-ended bound.
type ListFilter struct {
	Today bool
	Week  bool
	From  string
	To    string
}

// List returns events matching the filter, in (date, start time, id) order.
func (s *Service) List(f ListFilter) ([]types.Event, error) {
	events, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	today := s.today()

	switch {
	case f.Today:
		return filterEvents(events, func(e types.Event) bool {
			return e.Date == today
		}), nil

	case f.Week:
		start := weekStart(today)
		end := start.AddDays(6)
		return filterEvents(events, func(e types.Event) bool {
			return !e.Date.Before(start) && !e.Date.After(end)
		}), nil

	case f.From != "" || f.To != "":
		var from, to types.Date
		hasFrom, hasTo := f.From != "", f.To != ""
		if hasFrom {
			if from, err = s.ParseDate(f.From); err != nil {
				return nil, err
			}
		}
		if hasTo {
			if to, err = s.ParseDate(f.To); err != nil {
				return nil, err
			}
		}
		return filterEvents(events, func(e types.Event) bool {
			if hasFrom && e.Date.Before(from) {
				return false
			}
			if hasTo && e.Date.After(to) {
				return false
			}
			return true
		}), nil

	default:
		return filterEvents(events, func(e types.Event) bool {
			return !e.Date.Before(today)
		}), nil
	}
}

// Search returns events whose searchable text contains the query,
// case-insensitively. With titleOnly only the title is searched; otherwise
// id, title, description, location, date, time and duration all match.
func (s *Service) Search(query string, titleOnly bool) ([]types.Event, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, types.InvalidInputf("search query cannot be empty")
	}
	events, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	return filterEvents(events, func(e types.Event) bool {
		return strings.Contains(haystack(e, titleOnly), q)
	}), nil
}

// haystack builds the lowercase searchable text for an event.
func haystack(e types.Event, titleOnly bool) string {
	if titleOnly {
		return strings.ToLower(e.Title)
	}
	parts := []string{
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		e.Date.String(),
		e.StartTime,
		strconv.Itoa(e.DurationMin),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// AgendaForDay returns the resolved date and its events sorted by
// (start time, id). The stored order is already (date, start time, id), so
// filtering one date preserves the agenda order. An empty date means today.
func (s *Service) AgendaForDay(dateStr string) (types.Date, []types.Event, error) {
	d := s.today()
	if strings.TrimSpace(dateStr) != "" {
		var err error
		if d, err = s.ParseDate(dateStr); err != nil {
			return types.Date{}, nil, err
		}
	}
	events, err := s.store.LoadAll()
	if err != nil {
		return types.Date{}, nil, err
	}
	return d, filterEvents(events, func(e types.Event) bool {
		return e.Date == d
	}), nil
}

// AgendaForWeek returns the 7 dates of the anchor's week (Sunday first) and
// each day's sorted events. Every date is present in the map, empty days
// included. An empty anchor means today.
func (s *Service) AgendaForWeek(anchor string) ([]types.Date, map[types.Date][]types.Event, error) {
	d := s.today()
	if strings.TrimSpace(anchor) != "" {
		var err error
		if d, err = s.ParseDate(anchor); err != nil {
			return nil, nil, err
		}
	}
	events, err := s.store.LoadAll()
	if err != nil {
		return nil, nil, err
	}

	start := weekStart(d)
	days := make([]types.Date, 0, 7)
	week := make(map[types.Date][]types.Event, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDays(i)
		days = append(days, day)
		week[day] = filterEvents(events, func(e types.Event) bool {
			return e.Date == day
		})
	}
	return days, week, nil
}

// filterEvents returns the events matching keep, preserving order. The
// result is never nil so callers and JSON output see an empty list.
func filterEvents(events []types.Event, keep func(types.Event) bool) []types.Event {
	out := []types.Event{}
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
