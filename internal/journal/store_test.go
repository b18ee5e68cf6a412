package journal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/oneline/internal/localstore"
)

func openRecords(t *testing.T) *localstore.Records {
	t.Helper()
	rec, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return rec
}

func TestLoadMissingRecord(t *testing.T) {
	s := Load(openRecords(t))
	assert.Equal(t, 0, s.Len())
}

func TestLoadMalformedRecord(t *testing.T) {
	rec := openRecords(t)
	require.NoError(t, rec.Put(localstore.KeyEntries, "{not json"))

	s := Load(rec)
	assert.Equal(t, 0, s.Len(), "malformed entries record must hydrate as empty")
}

func TestUpsertIsIdempotentPerDate(t *testing.T) {
	s := Load(openRecords(t))

	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "first", Timestamp: 100}))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "second", Timestamp: 200}))

	assert.Equal(t, 1, s.Len())
	e, ok := s.Get("2026-08-01")
	require.True(t, ok)
	assert.Equal(t, "second", e.Text)
}

func TestUpsertPreservesTimestamp(t *testing.T) {
	s := Load(openRecords(t))

	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "first", Timestamp: 100}))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "edited", Timestamp: 999}))

	e, _ := s.Get("2026-08-01")
	assert.Equal(t, int64(100), e.Timestamp, "edits must keep the original creation time")

	require.NoError(t, s.Upsert(Entry{Date: "2026-08-02", Text: "new day", Timestamp: 999}))
	e2, _ := s.Get("2026-08-02")
	assert.Equal(t, int64(999), e2.Timestamp, "a brand-new date keeps its own timestamp")
}

func TestUpsertReplacesWhole(t *testing.T) {
	s := Load(openRecords(t))

	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "guided", Question: "why?", Timestamp: 100}))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "free", Question: "", Timestamp: 200}))

	e, _ := s.Get("2026-08-01")
	assert.Empty(t, e.Question, "replace, not merge")
}

func TestPersistAndReload(t *testing.T) {
	rec := openRecords(t)

	s := Load(rec)
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-29", Text: "Grateful for quiet mornings", Timestamp: 42}))

	s2 := Load(rec)
	e, ok := s2.Get("2026-08-29")
	require.True(t, ok)
	assert.Equal(t, "Grateful for quiet mornings", e.Text)
	assert.Equal(t, int64(42), e.Timestamp)
}

func TestRecentOrdering(t *testing.T) {
	s := Load(openRecords(t))

	for i, ts := range []int64{1, 7, 3, 9, 2, 8, 4, 6, 5} {
		date := fmt.Sprintf("2026-08-%02d", i+1)
		require.NoError(t, s.Upsert(Entry{Date: date, Text: fmt.Sprintf("t%d", ts), Timestamp: ts}))
	}

	recent := s.Recent(7)
	require.Len(t, recent, 7)
	var got []string
	for _, e := range recent {
		got = append(got, e.Text)
	}
	assert.Equal(t, []string{"t9", "t8", "t7", "t6", "t5", "t4", "t3"}, got)
}

func TestRecentFewerThanN(t *testing.T) {
	s := Load(openRecords(t))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "only", Timestamp: 1}))

	assert.Len(t, s.Recent(7), 1)
	assert.Empty(t, Load(openRecords(t)).Recent(7))
}

func TestRecentTieBreakIsDeterministic(t *testing.T) {
	s := Load(openRecords(t))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "a", Timestamp: 5}))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-02", Text: "b", Timestamp: 5}))

	recent := s.Recent(2)
	assert.Equal(t, "2026-08-02", recent[0].Date, "ties order by date descending")
	assert.Equal(t, "2026-08-01", recent[1].Date)
}

func TestAllReturnsCopy(t *testing.T) {
	s := Load(openRecords(t))
	require.NoError(t, s.Upsert(Entry{Date: "2026-08-01", Text: "x", Timestamp: 1}))

	all := s.All()
	delete(all, "2026-08-01")
	assert.Equal(t, 1, s.Len())
}
