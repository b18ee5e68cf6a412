package journal

import (
	"encoding/json"
	"sort"

	"github.com/ramanasai/oneline/internal/localstore"
)

// Store is the single source of truth for all views: an in-memory
// mapping from date to Entry, persisted whole after every mutation.
type Store struct {
	rec     *localstore.Records
	entries map[string]Entry
}

// Load hydrates the store from the entries record. A missing or
// malformed record yields an empty store, never an error.
func Load(rec *localstore.Records) *Store {
	s := &Store{rec: rec, entries: map[string]Entry{}}
	raw, ok := rec.Get(localstore.KeyEntries)
	if !ok {
		return s
	}
	var m map[string]Entry
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return s
	}
	if m != nil {
		s.entries = m
	}
	return s
}

// Upsert inserts or replaces the entry for e.Date. The timestamp of a
// prior entry for the same date is carried over. Text validation is the
// caller's responsibility.
func (s *Store) Upsert(e Entry) error {
	if prev, ok := s.entries[e.Date]; ok {
		e.Timestamp = prev.Timestamp
	}
	s.entries[e.Date] = e
	return s.persist()
}

// Get returns the entry for a date key.
func (s *Store) Get(date string) (Entry, bool) {
	e, ok := s.entries[date]
	return e, ok
}

// All returns a copy of the full mapping for read-only projections.
func (s *Store) All() map[string]Entry {
	out := make(map[string]Entry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

func (s *Store) Len() int { return len(s.entries) }

// Recent returns up to n entries ordered by timestamp descending.
// Entries sharing a timestamp are ordered by date descending, which is
// the only other total order the model has.
func (s *Store) Recent(n int) []Entry {
	all := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Timestamp != all[j].Timestamp {
			return all[i].Timestamp > all[j].Timestamp
		}
		return all[i].Date > all[j].Date
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	return s.rec.Put(localstore.KeyEntries, string(data))
}
