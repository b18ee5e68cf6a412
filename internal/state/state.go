// Package state owns the process-wide application state: one load at
// startup from the three persisted records, one save path per field
// group. Nothing else touches the records directly.
package state

import (
	"github.com/ramanasai/oneline/internal/journal"
	"github.com/ramanasai/oneline/internal/localstore"
	"github.com/ramanasai/oneline/internal/pin"
)

// View is the active projection over the entry store.
type View int

const (
	ViewDaily View = iota
	ViewCalendar
	ViewSummary
)

// App holds everything the views share.
type App struct {
	Entries    *journal.Store
	Gate       *pin.Gate
	ActiveView View
	DarkMode   bool

	rec *localstore.Records
}

// Load builds the App from the records. A configured PIN starts the
// gate locked; theme defaults to light.
func Load(rec *localstore.Records) *App {
	storedPIN, _ := rec.Get(localstore.KeyPIN)
	theme, _ := rec.Get(localstore.KeyTheme)

	return &App{
		Entries:    journal.Load(rec),
		Gate:       pin.NewGate(storedPIN),
		ActiveView: ViewDaily,
		DarkMode:   theme == "dark",
		rec:        rec,
	}
}

// SetDarkMode flips the theme and persists it immediately.
func (a *App) SetDarkMode(dark bool) {
	a.DarkMode = dark
	v := "light"
	if dark {
		v = "dark"
	}
	_ = a.rec.Put(localstore.KeyTheme, v)
}

// SetPIN validates and installs a new PIN, persisting it. An invalid
// code changes nothing.
func (a *App) SetPIN(code string) error {
	if err := a.Gate.Set(code); err != nil {
		return err
	}
	return a.rec.Put(localstore.KeyPIN, code)
}

// ClearPIN removes the PIN record and unlocks.
func (a *App) ClearPIN() {
	a.Gate.Clear()
	_ = a.rec.Delete(localstore.KeyPIN)
}
