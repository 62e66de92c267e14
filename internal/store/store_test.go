package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "events.json"))
}

func testEvent(id string, date types.Date, start string) types.Event {
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	return types.Event{
		ID:          id,
		Title:       "event " + id,
		Date:        date,
		StartTime:   start,
		DurationMin: 60,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestLoadAllMaterializesEmptyDocument(t *testing.T) {
	st := newTestStore(t)

	events, err := st.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, events)

	raw, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"events": []}`, string(raw))
}

func TestInsertAndGetByID(t *testing.T) {
	st := newTestStore(t)
	day := types.NewDate(2026, time.February, 10)
	e := testEvent("e1", day, "09:00")
	e.Description = "notes"
	e.Location = "office"

	require.NoError(t, st.Insert(e))

	got, ok, err := st.GetByID("e1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.Date, got.Date)
	assert.Equal(t, "notes", got.Description)
	assert.Equal(t, "office", got.Location)

	_, ok, err = st.GetByID("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInsertDuplicateID(t *testing.T) {
	st := newTestStore(t)
	day := types.NewDate(2026, time.February, 10)
	require.NoError(t, st.Insert(testEvent("e1", day, "09:00")))

	err := st.Insert(testEvent("e1", day, "11:00"))
	assert.True(t, types.IsKind(err, types.KindStorage))

	events, loadErr := st.LoadAll()
	require.NoError(t, loadErr)
	assert.Len(t, events, 1)
}

func TestInsertBatchIsAtomic(t *testing.T) {
	st := newTestStore(t)
	day := types.NewDate(2026, time.February, 10)
	require.NoError(t, st.Insert(testEvent("e1", day, "09:00")))

	tests := []struct {
		name  string
		batch []types.Event
	}{
		{
			name: "duplicate of stored id",
			batch: []types.Event{
				testEvent("e2", day, "10:00"),
				testEvent("e1", day, "11:00"),
			},
		},
		{
			name: "duplicate within batch",
			batch: []types.Event{
				testEvent("e3", day, "10:00"),
				testEvent("e3", day, "11:00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.InsertBatch(tt.batch)
			assert.True(t, types.IsKind(err, types.KindStorage))

			events, loadErr := st.LoadAll()
			require.NoError(t, loadErr)
			assert.Len(t, events, 1, "failed batch must leave the document unchanged")
		})
	}
}

func TestReplace(t *testing.T) {
	st := newTestStore(t)
	day := types.NewDate(2026, time.February, 10)
	require.NoError(t, st.Insert(testEvent("e1", day, "09:00")))

	updated := testEvent("e1", day, "10:30")
	updated.Title = "renamed"
	require.NoError(t, st.Replace(updated))

	got, ok, err := st.GetByID("e1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, "10:30", got.StartTime)

	err = st.Replace(testEvent("ghost", day, "09:00"))
	assert.True(t, types.IsKind(err, types.KindStorage))
}

func TestDeleteByID(t *testing.T) {
	st := newTestStore(t)
	day := types.NewDate(2026, time.February, 10)
	require.NoError(t, st.Insert(testEvent("e1", day, "09:00")))

	ok, err := st.DeleteByID("e1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.DeleteByID("e1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteWhereDate(t *testing.T) {
	st := newTestStore(t)
	d1 := types.NewDate(2026, time.February, 10)
	d2 := types.NewDate(2026, time.February, 11)
	require.NoError(t, st.InsertBatch([]types.Event{
		testEvent("e1", d1, "09:00"),
		testEvent("e2", d1, "11:00"),
		testEvent("e3", d2, "09:00"),
	}))

	n, err := st.DeleteWhereDate(d1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = st.DeleteWhereDate(d1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	events, err := st.LoadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e3", events[0].ID)
}

func TestLoadAllSortsAndIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	d1 := types.NewDate(2026, time.February, 10)
	d2 := types.NewDate(2026, time.February, 11)
	require.NoError(t, st.InsertBatch([]types.Event{
		testEvent("b", d2, "09:00"),
		testEvent("c", d1, "12:00"),
		testEvent("a", d1, "09:00"),
	}))

	first, err := st.LoadAll()
	require.NoError(t, err)
	second, err := st.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	ids := []string{first[0].ID, first[1].ID, first[2].ID}
	assert.Equal(t, []string{"a", "c", "b"}, ids)
}

func TestLoadAcceptsBareArrayDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	content := `[
  {
    "id": "e1",
    "title": "legacy",
    "date": "2026-02-10",
    "start_time": "09:00",
    "duration_min": 30,
    "created_at": "2026-02-01T12:00:00",
    "updated_at": "2026-02-01T12:00:00.500000"
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	events, err := New(path).LoadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "legacy", events[0].Title)
	assert.Equal(t, 30, events[0].DurationMin)
}

func TestLoadMissingRequiredField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	doc := map[string]any{
		"events": []map[string]any{{
			"id":         "e1",
			"title":      "no time fields",
			"date":       "2026-02-10",
			"created_at": "2026-02-01T12:00:00Z",
			"updated_at": "2026-02-01T12:00:00Z",
		}},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err = New(path).LoadAll()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindStorage))
	assert.Contains(t, err.Error(), `"start_time"`)
}

func TestLoadMalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "object without events", content: `{"items": []}`},
		{name: "events not a list", content: `{"events": 7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "events.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := New(path).LoadAll()
			assert.True(t, types.IsKind(err, types.KindStorage))
		})
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st := New(filepath.Join(dir, "events.json"))
	day := types.NewDate(2026, time.February, 10)
	require.NoError(t, st.Insert(testEvent("e1", day, "09:00")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "events.json", entries[0].Name())
}
