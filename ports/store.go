package ports

import "github.com/locki-io/locki-id-addon/core"

// ProfileStore persists the single active profile across process restarts.
type ProfileStore interface {
	// Load reads the persisted profile. A missing or corrupt file yields a
	// zero profile, never an error.
	Load() core.Profile

	// Save atomically replaces the persisted profile.
	Save(profile core.Profile) error
}
