package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultStore reads and writes the persisted default-simulator selection:
// a single UDID line in a plain-text file under the user config directory.
// No validation happens at write time, so a stored UDID may not refer to a
// currently available simulator.
type DefaultStore struct {
	path string
}

// NewDefaultStore creates a DefaultStore with the standard path
// ($XDG_CONFIG_HOME/isim/default or ~/.config/isim/default).
func NewDefaultStore() (*DefaultStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config directory: %w", err)
	}
	return &DefaultStore{path: filepath.Join(dir, "isim", "default")}, nil
}

// NewDefaultStoreWithPath creates a DefaultStore with a custom path (for testing).
func NewDefaultStoreWithPath(path string) *DefaultStore {
	return &DefaultStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *DefaultStore) Path() string {
	return s.path
}

// Get returns the stored default UDID, or "" when none is set.
func (s *DefaultStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading default file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes udid to the default file atomically, creating parent
// directories if needed. It writes to a temporary file first, then renames
// to avoid partial writes.
func (s *DefaultStore) Set(udid string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".default-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp default file: %w", err)
	}
	tmpPath := tmp.Name()
	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		// On success tmpPath was renamed away, so Remove is a no-op.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.WriteString(udid + "\n"); err != nil {
		return fmt.Errorf("writing temp default file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp default file: %w", err)
	}
	closed = true
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("renaming default file: %w", err)
	}
	return nil
}

// Clear removes the stored default. Clearing an unset default is not an error.
func (s *DefaultStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing default file: %w", err)
	}
	return nil
}
