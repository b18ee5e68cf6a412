// Package journal holds the entry model and the date-keyed store behind
// every view.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxTextLen is the longest accepted entry text, after trimming.
const MaxTextLen = 300

// DateLayout is the store key format.
const DateLayout = "2006-01-02"

// Entry is one calendar day's journaled line plus metadata.
type Entry struct {
	Date      string `json:"date"` // YYYY-MM-DD, unique key
	Text      string `json:"text"`
	Question  string `json:"question"`  // empty when written in free mode
	Timestamp int64  `json:"timestamp"` // creation time, ms since epoch; survives edits
}

var (
	ErrEmptyText   = errors.New("journal: entry text is empty")
	ErrTextTooLong = fmt.Errorf("journal: entry text exceeds %d characters", MaxTextLen)
)

// CleanText trims the text and validates its length. The returned string
// is what gets persisted.
func CleanText(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", ErrEmptyText
	}
	if len([]rune(t)) > MaxTextLen {
		return "", ErrTextTooLong
	}
	return t, nil
}

// DateKey formats t's calendar date as a store key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the store key for the current date.
func Today() string {
	return DateKey(time.Now())
}
