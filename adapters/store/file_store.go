// Package store provides ProfileStore implementations.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/locki-io/locki-id-addon/core"
	"github.com/locki-io/locki-id-addon/ports"
)

// FileStore persists the profile as a JSON file. Writes go through a
// temporary file in the same directory followed by a rename, so a crash
// mid-write never leaves a truncated profile behind.
type FileStore struct {
	path string
	log  *zap.Logger
}

var _ ports.ProfileStore = (*FileStore)(nil)

// NewFileStore creates a store writing to path.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, log: log}
}

// DefaultPath returns the profile location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "locki", "profile.json"), nil
}

// Load reads the persisted profile. A missing file, an unreadable file or
// malformed JSON all yield a zero profile: on-disk state is advisory and a
// parse failure must never propagate to the caller.
func (s *FileStore) Load() core.Profile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return core.Profile{}
	}

	var profile core.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.log.Warn("profile file is corrupt, starting from a clean profile",
			zap.String("path", s.path), zap.Error(err))
		return core.Profile{}
	}

	return profile
}

// Save atomically replaces the persisted profile.
func (s *FileStore) Save(profile core.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	// The profile holds an API key; keep it out of other users' reach.
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	return nil
}
