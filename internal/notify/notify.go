package notify

import (
	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// FormatDailyReminder is the nudge shown when today has no entry yet;
// the scheduler never fires once a line is captured.
func FormatDailyReminder() (string, string) {
	return "One line a day", "Have you written today's line yet?"
}
