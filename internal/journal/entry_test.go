package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := CleanText("  quiet morning  ")
		require.NoError(t, err)
		assert.Equal(t, "quiet morning", got)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := CleanText("")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		_, err := CleanText("   \n\t ")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("accepts exactly 300 characters", func(t *testing.T) {
		got, err := CleanText(strings.Repeat("a", 300))
		require.NoError(t, err)
		assert.Len(t, got, 300)
	})

	t.Run("rejects 301 characters", func(t *testing.T) {
		_, err := CleanText(strings.Repeat("a", 301))
		assert.ErrorIs(t, err, ErrTextTooLong)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		_, err := CleanText(strings.Repeat("م", 300))
		assert.NoError(t, err)
	})
}

func TestDateKey(t *testing.T) {
	d := time.Date(2026, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-07", DateKey(d))
}
