// Package device models the brightness-capable devices the kernel exposes
// under the backlight and LED class directories, and implements their
// enumeration and raw brightness I/O.
package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Class is the category of a light source, matching its sysfs class directory.
type Class string

const (
	Backlight Class = "backlight"
	LEDs      Class = "leds"
)

// Roots maps each device class to the directory that holds its devices.
type Roots map[Class]string

// DefaultRoots returns the standard sysfs class directories.
func DefaultRoots() Roots {
	return Roots{
		Backlight: "/sys/class/backlight",
		LEDs:      "/sys/class/leds",
	}
}

// Device is one brightness-capable device. Brightness and MaxBrightness hold
// the values read when the device was enumerated; GetBrightness re-reads the
// live value.
type Device struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Class         Class  `json:"class"`
	Brightness    int    `json:"brightness"`
	MaxBrightness int    `json:"max_brightness"`
}

// New builds a Device from its sysfs directory, reading the current and
// maximum brightness files.
func New(path string, class Class) (Device, error) {
	brightness, err := readValue(filepath.Join(path, "brightness"))
	if err != nil {
		return Device{}, err
	}
	maxBrightness, err := readValue(filepath.Join(path, "max_brightness"))
	if err != nil {
		return Device{}, err
	}
	return Device{
		Name:          filepath.Base(path),
		Path:          path,
		Class:         class,
		Brightness:    brightness,
		MaxBrightness: maxBrightness,
	}, nil
}

// GetBrightness reads the device's current raw brightness from sysfs.
func (d Device) GetBrightness() (int, error) {
	return readValue(filepath.Join(d.Path, "brightness"))
}

// SetBrightness writes a raw brightness value, clamped to [0, MaxBrightness].
// The value is written in a single write so concurrent readers never observe
// a partial value.
func (d Device) SetBrightness(value int) error {
	if value < 0 {
		value = 0
	}
	if value > d.MaxBrightness {
		value = d.MaxBrightness
	}
	return os.WriteFile(filepath.Join(d.Path, "brightness"), []byte(strconv.Itoa(value)), 0644)
}

func readValue(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return value, nil
}
