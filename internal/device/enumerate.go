package device

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Enumerate scans the given class roots and returns all devices found,
// sorted by name. Devices whose brightness files cannot be read are skipped
// with a warning; a missing class root yields no devices for that class.
func Enumerate(roots Roots) []Device {
	var devices []Device
	for class, root := range roots {
		devices = append(devices, enumerateClass(root, class)...)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Name < devices[j].Name })
	return devices
}

func enumerateClass(root string, class Class) []Device {
	entries, err := os.ReadDir(root)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("root", root).Warn("failed to scan class directory")
		}
		return nil
	}
	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		// sysfs class entries are symlinks to the real device directories
		d, err := New(filepath.Join(root, entry.Name()), class)
		if err != nil {
			log.WithError(err).WithField("device", entry.Name()).Warn("skipping unreadable device")
			continue
		}
		devices = append(devices, d)
	}
	return devices
}
