// Package pin implements the journal's access gate.
//
// The PIN is stored and compared as plain text with no attempt limit,
// matching the storage format. Anything stronger (hashing, throttling)
// belongs behind this same surface, not in the views.
package pin

import "errors"

// Length is the required PIN length.
const Length = 4

var ErrInvalidPIN = errors.New("pin: must be exactly 4 digits")

// Validate rejects anything that is not exactly four ASCII digits.
func Validate(code string) error {
	if len(code) != Length {
		return ErrInvalidPIN
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}

// Gate is a two-state lock over the journal's views.
type Gate struct {
	pin      string
	unlocked bool
}

// NewGate starts Unlocked when no PIN is configured, Locked otherwise.
func NewGate(stored string) *Gate {
	return &Gate{pin: stored, unlocked: stored == ""}
}

// Required reports whether a PIN is configured.
func (g *Gate) Required() bool { return g.pin != "" }

func (g *Gate) Unlocked() bool { return g.unlocked }

// Submit compares the candidate by exact string equality and unlocks on
// a match. A mismatch leaves the gate locked.
func (g *Gate) Submit(code string) bool {
	if g.pin != "" && code == g.pin {
		g.unlocked = true
	}
	return g.unlocked
}

// Lock re-locks the gate. A no-op when no PIN is configured.
func (g *Gate) Lock() {
	if g.pin != "" {
		g.unlocked = false
	}
}

// Set installs a validated PIN without changing the unlock state.
func (g *Gate) Set(code string) error {
	if err := Validate(code); err != nil {
		return err
	}
	g.pin = code
	return nil
}

// Clear removes the PIN and forces Unlocked.
func (g *Gate) Clear() {
	g.pin = ""
	g.unlocked = true
}

// PIN returns the configured PIN, empty when unset.
func (g *Gate) PIN() string { return g.pin }
