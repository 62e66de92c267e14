// Package service implements the calendar business rules on top of the
// event store: input validation, recurrence expansion, conflict
// enforcement, edit diffing, and query projections. All mutations are
// validated in full before anything is written, so a failed operation
// never leaves a partial document.
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/mesh-intelligence/calctl/internal/store"
	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Service orchestrates calendar operations against one event store. It is
// synchronous and single-writer: one Service per process invocation.
type Service struct {
	store *store.Store

	// now supplies the current wall-clock time; injected so tests can pin
	// "today" for date-relative queries.
	now func() time.Time

	// natural parses human date phrases ("tomorrow", "next friday") as a
	// fallback after strict ISO parsing.
	natural *when.Parser
}

// New returns a Service over the given store.
func New(st *store.Store) *Service {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Service{
		store:   st,
		now:     time.Now,
		natural: w,
	}
}

// ParseDate resolves a date argument: strict ISO YYYY-MM-DD first, then a
// natural-language fallback relative to the current time. Exposed for the
// CLI so its date flags resolve exactly like the core's.
func (s *Service) ParseDate(raw string) (types.Date, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return types.Date{}, types.InvalidInputf("date is required")
	}
	if d, err := types.ParseDate(v); err == nil {
		return d, nil
	}
	if s.natural != nil {
		if r, err := s.natural.Parse(v, s.now()); err == nil && r != nil {
			return types.DateOf(r.Time), nil
		}
	}
	return types.Date{}, types.InvalidInputf("invalid date %q (expected YYYY-MM-DD)", raw)
}

// normalizeTime parses a 24-hour H:MM or HH:MM value and returns it
// zero-padded.
func normalizeTime(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", types.InvalidInputf("invalid time %q (expected HH:MM 24-hour)", raw)
	}
	return t.Format("15:04"), nil
}

// validateDuration checks the minute duration is in [1, 1440].
func validateDuration(d int) (int, error) {
	if d <= 0 {
		return 0, types.InvalidInputf("duration must be a positive integer (minutes)")
	}
	if d > 24*60 {
		return 0, types.InvalidInputf("duration must be at most %d minutes", 24*60)
	}
	return d, nil
}

// validateTitle trims the title and rejects an empty result.
func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", types.InvalidInputf("title is required")
	}
	return title, nil
}

// newEventID generates an opaque unique event id.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// weekStart returns the Sunday on or before d; weeks run Sunday-Saturday.
func weekStart(d types.Date) types.Date {
	return d.AddDays(-int(d.Weekday()))
}

// today returns the current date under the service clock.
func (s *Service) today() types.Date {
	return types.DateOf(s.now())
}
