// Package store persists calendar events in a single JSON document.
//
// Every mutation is a full load, an in-memory modification, and a full
// atomic write: the new document is written to a temporary sibling file,
// synced, and renamed over the target, so a crash mid-write never leaves a
// truncated document. There is no cross-process locking; when two processes
// mutate the same file concurrently the last full-document write wins and
// silently discards the other's change. Callers that need multi-process
// safety must serialize access themselves.
package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

// Store reads and writes one JSON event document at a fixed path. The path
// is injected at construction; the Store holds no other state, so every
// call observes the file as it is at call time.
type Store struct {
	path string
}

// New returns a Store backed by the document at path. The file is
// materialized on first access, not here.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// LoadAll reads the full document and returns its events sorted by
// (date, start time, id). A missing file is materialized as an empty
// document first.
func (s *Store) LoadAll() ([]types.Event, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	events := make([]types.Event, 0, len(doc.Events))
	for _, rec := range doc.Events {
		e, err := rec.decode()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	types.SortEvents(events)
	return events, nil
}

// GetByID returns the event with the given id, or ok=false when absent.
func (s *Store) GetByID(id string) (types.Event, bool, error) {
	doc, err := s.load()
	if err != nil {
		return types.Event{}, false, err
	}
	for _, rec := range doc.Events {
		if rec.ID != nil && *rec.ID == id {
			e, err := rec.decode()
			if err != nil {
				return types.Event{}, false, err
			}
			return e, true, nil
		}
	}
	return types.Event{}, false, nil
}

// Insert appends one event to the document. Fails if the id already exists.
func (s *Store) Insert(e types.Event) error {
	return s.InsertBatch([]types.Event{e})
}

// InsertBatch appends events as one atomic write. If any id duplicates an
// existing id or another id in the same batch, nothing is written.
func (s *Store) InsertBatch(events []types.Event) error {
	if len(events) == 0 {
		return nil
	}
	doc, err := s.load()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(doc.Events)+len(events))
	for _, rec := range doc.Events {
		if rec.ID != nil {
			seen[*rec.ID] = true
		}
	}
	for _, e := range events {
		if seen[e.ID] {
			return types.Storagef("event with id %s already exists", e.ID)
		}
		seen[e.ID] = true
	}
	for _, e := range events {
		doc.Events = append(doc.Events, encode(e))
	}
	return s.save(doc)
}

// Replace swaps the stored record with the same id for e. Fails if the id
// does not exist.
func (s *Store) Replace(e types.Event) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i, rec := range doc.Events {
		if rec.ID != nil && *rec.ID == e.ID {
			doc.Events[i] = encode(e)
			return s.save(doc)
		}
	}
	return types.Storagef("event with id %s not found", e.ID)
}

// DeleteByID removes the event with the given id. Returns false, without
// writing, when the id is absent.
func (s *Store) DeleteByID(id string) (bool, error) {
	doc, err := s.load()
	if err != nil {
		return false, err
	}
	for i, rec := range doc.Events {
		if rec.ID != nil && *rec.ID == id {
			doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
			if err := s.save(doc); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// DeleteWhereDate removes every event on the given date and returns the
// number removed. No write happens when nothing matches.
func (s *Store) DeleteWhereDate(d types.Date) (int, error) {
	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	target := d.String()
	kept := doc.Events[:0]
	for _, rec := range doc.Events {
		if rec.Date != nil && *rec.Date == target {
			continue
		}
		kept = append(kept, rec)
	}
	removed := len(doc.Events) - len(kept)
	doc.Events = kept
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(doc); err != nil {
		return 0, err
	}
	return removed, nil
}

// load reads and parses the document, materializing an empty one when the
// file does not exist. A bare JSON array at the root is accepted and
// treated as the events list, for documents written by older tooling.
func (s *Store) load() (document, error) {
	if err := s.ensureFile(); err != nil {
		return document{}, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, types.WrapStorage(err, "reading %s", s.path)
	}
	if len(raw) == 0 {
		return document{}, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err == nil {
		evRaw, ok := root["events"]
		if !ok {
			return document{}, types.Storagef("malformed document in %s: no events field", s.path)
		}
		var recs []record
		if err := json.Unmarshal(evRaw, &recs); err != nil {
			return document{}, types.WrapStorage(err, "malformed events in %s", s.path)
		}
		return document{Events: recs}, nil
	}
	var bare []record
	if err := json.Unmarshal(raw, &bare); err == nil {
		return document{Events: bare}, nil
	}
	return document{}, types.Storagef("malformed document in %s", s.path)
}

// save writes the full document atomically: temp sibling, flush, fsync,
// rename. The temp file is removed on every failure path.
func (s *Store) save(doc document) error {
	if doc.Events == nil {
		doc.Events = []record{}
	}
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return types.WrapStorage(err, "encoding document")
	}
	content = append(content, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".events-*.tmp")
	if err != nil {
		return types.WrapStorage(err, "creating temp file")
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.WrapStorage(err, "writing document")
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.WrapStorage(err, "flushing document")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.WrapStorage(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return types.WrapStorage(err, "closing temp file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return types.WrapStorage(err, "replacing %s", s.path)
	}
	return nil
}

// ensureFile creates the parent directory and an empty document when the
// backing file does not exist yet.
func (s *Store) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return types.WrapStorage(err, "stat %s", s.path)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return types.WrapStorage(err, "creating data directory")
	}
	return s.save(document{Events: []record{}})
}
