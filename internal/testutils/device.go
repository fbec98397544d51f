// Package testutils creates fixture device directories mimicking the sysfs
// layout of backlight and LED devices.
package testutils

import (
	"os"
	"path/filepath"
	"strconv"
)

// InitDevice creates a device directory with the given current and maximum
// brightness. Values carry a trailing newline, as sysfs attributes do.
func InitDevice(path string, brightness, maxBrightness int) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(path, "brightness"), []byte(strconv.Itoa(brightness)+"\n"), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "max_brightness"), []byte(strconv.Itoa(maxBrightness)+"\n"), 0644)
}
