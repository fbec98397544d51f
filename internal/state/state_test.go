package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clambin/brightctl/internal/device"
	"github.com/clambin/brightctl/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := state.Store{Path: filepath.Join(t.TempDir(), "state", "devices.yaml")}

	devices := []device.Device{
		{Name: "intel_backlight", Class: device.Backlight, Brightness: 128, MaxBrightness: 255},
		{Name: "platform::fnlock", Class: device.LEDs, Brightness: 1, MaxBrightness: 1},
	}
	require.NoError(t, store.Save(devices))

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"intel_backlight": 128, "platform::fnlock": 1}, saved)
}

func TestStore_SaveMerges(t *testing.T) {
	store := state.Store{Path: filepath.Join(t.TempDir(), "devices.yaml")}

	require.NoError(t, store.Save([]device.Device{{Name: "intel_backlight", Brightness: 128}}))
	require.NoError(t, store.Save([]device.Device{{Name: "acpi_video0", Brightness: 50}}))
	// saving a device again updates its record
	require.NoError(t, store.Save([]device.Device{{Name: "intel_backlight", Brightness: 200}}))

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"intel_backlight": 200, "acpi_video0": 50}, saved)
}

func TestStore_LoadMissing(t *testing.T) {
	store := state.Store{Path: filepath.Join(t.TempDir(), "devices.yaml")}

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{invalid"), 0644))

	store := state.Store{Path: path}
	_, err := store.Load()
	assert.Error(t, err)
}
