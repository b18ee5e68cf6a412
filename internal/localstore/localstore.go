// Package localstore persists the journal's three records (entries, pin,
// theme) as independent keyed values on disk.
package localstore

import (
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// Record keys. Each is one value, written whole on every change.
const (
	KeyEntries = "entries"
	KeyPIN     = "pin"
	KeyTheme   = "theme"
)

// DefaultDir returns the data directory, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "oneline")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

type Records struct {
	d *diskv.Diskv
}

// Open returns a Records rooted at dir. An empty dir selects DefaultDir.
func Open(dir string) (*Records, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return &Records{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Get returns the record's value and whether it exists.
func (r *Records) Get(key string) (string, bool) {
	b, err := r.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (r *Records) Put(key, value string) error {
	return r.d.Write(key, []byte(value))
}

// Delete removes the record. Missing records are not an error.
func (r *Records) Delete(key string) error {
	if !r.d.Has(key) {
		return nil
	}
	return r.d.Erase(key)
}
