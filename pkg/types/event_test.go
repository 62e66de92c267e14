package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStartEnd(t *testing.T) {
	e := Event{
		ID:          "e1",
		Title:       "Standup",
		Date:        NewDate(2026, time.February, 10),
		StartTime:   "09:30",
		DurationMin: 45,
	}

	start := e.StartDT()
	assert.Equal(t, time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC), start)
	assert.Equal(t, start.Add(45*time.Minute), e.EndDT())
}

func TestEventSpanIsPureWallClockArithmetic(t *testing.T) {
	// 2026-03-08 is the US spring-forward day and 2026-11-01 the fall-back
	// day. Wall-clock times carry no zone, so an event's span must be its
	// duration in minutes on those dates too, never an hour longer or
	// shorter.
	tests := []struct {
		name    string
		date    Date
		time    string
		minutes int
		wantEnd time.Time
	}{
		{
			name:    "across a spring-forward morning",
			date:    NewDate(2026, time.March, 8),
			time:    "01:00",
			minutes: 120,
			wantEnd: time.Date(2026, time.March, 8, 3, 0, 0, 0, time.UTC),
		},
		{
			name:    "across a fall-back morning",
			date:    NewDate(2026, time.November, 1),
			time:    "00:30",
			minutes: 120,
			wantEnd: time.Date(2026, time.November, 1, 2, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{
				ID:          "e1",
				Date:        tt.date,
				StartTime:   tt.time,
				DurationMin: tt.minutes,
			}
			assert.Equal(t, tt.wantEnd, e.EndDT())
			assert.Equal(t, time.Duration(tt.minutes)*time.Minute, e.EndDT().Sub(e.StartDT()))
		})
	}
}

func TestEventCrossesMidnight(t *testing.T) {
	tests := []struct {
		name     string
		time     string
		duration int
		want     bool
	}{
		{
			name:     "well within the day",
			time:     "09:00",
			duration: 60,
			want:     false,
		},
		{
			name:     "late start crossing",
			time:     "23:30",
			duration: 120,
			want:     true,
		},
		{
			name:     "ends one minute before midnight",
			time:     "00:00",
			duration: 1439,
			want:     false,
		},
		{
			name:     "full day ends at next midnight",
			time:     "00:00",
			duration: 1440,
			want:     true,
		},
		{
			name:     "ends exactly at midnight",
			time:     "23:00",
			duration: 60,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{
				ID:          "e1",
				Date:        NewDate(2026, time.February, 10),
				StartTime:   tt.time,
				DurationMin: tt.duration,
			}
			assert.Equal(t, tt.want, e.CrossesMidnight())
		})
	}
}

func TestSortEvents(t *testing.T) {
	d1 := NewDate(2026, time.February, 10)
	d2 := NewDate(2026, time.February, 11)
	events := []Event{
		{ID: "b", Date: d2, StartTime: "09:00"},
		{ID: "c", Date: d1, StartTime: "10:00"},
		{ID: "b", Date: d1, StartTime: "09:00"},
		{ID: "a", Date: d1, StartTime: "09:00"},
	}

	SortEvents(events)

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "b"}, ids)
	assert.Equal(t, d2, events[3].Date)
}
