// Package state persists raw brightness values per device so they can be
// restored in a later invocation.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/clambin/brightctl/internal/device"
	"gopkg.in/yaml.v3"
)

// Store reads and writes the state file, a YAML mapping of device name to
// raw brightness.
type Store struct {
	Path string
}

// Save records the raw brightness of each device. Records are merged by name
// into any previously saved state, so saving a subset of devices leaves the
// other saved devices untouched.
func (s Store) Save(devices []device.Device) error {
	saved, err := s.Load()
	if err != nil {
		// a corrupt state file is replaced rather than kept
		saved = make(map[string]int)
	}
	for _, d := range devices {
		saved[d.Name] = d.Brightness
	}
	content, err := yaml.Marshal(saved)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.Path, content, 0644)
}

// Load returns the saved records. A missing state file yields an empty map;
// a malformed one is an error.
func (s Store) Load() (map[string]int, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]int), nil
		}
		return nil, err
	}
	saved := make(map[string]int)
	if err = yaml.Unmarshal(content, &saved); err != nil {
		return nil, fmt.Errorf("corrupt state file %s: %w", s.Path, err)
	}
	return saved, nil
}
