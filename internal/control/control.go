// Package control implements the brightness operations: reading and mutating
// a device's brightness in perceptual percent.
package control

import (
	"github.com/clambin/brightctl/internal/device"
	"github.com/clambin/brightctl/internal/percent"
	log "github.com/sirupsen/logrus"
)

// Get returns the device's current brightness as a perceptual percentage.
func Get(d device.Device) (float64, error) {
	return percent.FromRaw(d.Brightness, d.MaxBrightness)
}

// Set applies the requested percentage to the device and returns the
// percentage that was actually applied, which may differ from the requested
// one due to integer rounding. Requested values outside [0, 100] are clamped.
func Set(d device.Device, pct float64) (float64, error) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	raw, err := percent.ToRaw(pct, d.MaxBrightness)
	if err != nil {
		return 0, err
	}
	if err = d.SetBrightness(raw); err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{"device": d.Name, "raw": raw}).Debug("brightness set")
	return percent.FromRaw(raw, d.MaxBrightness)
}

// Add raises the device's brightness by delta percentage points. The current
// value is re-read from the device first, so the change is relative to the
// live state. The window between that read and the write is unavoidable:
// sysfs offers no transactional primitive.
func Add(d device.Device, delta float64) (float64, error) {
	raw, err := d.GetBrightness()
	if err != nil {
		return 0, err
	}
	current, err := percent.FromRaw(raw, d.MaxBrightness)
	if err != nil {
		return 0, err
	}
	return Set(d, current+delta)
}

// Sub lowers the device's brightness by delta percentage points.
func Sub(d device.Device, delta float64) (float64, error) {
	return Add(d, -delta)
}

// Result holds the outcome of one operation on one device.
type Result struct {
	Device  device.Device
	Percent float64
	Err     error
}

// Apply runs op on each device. A failing device does not stop the others;
// each device gets its own Result.
func Apply(devices []device.Device, op func(device.Device) (float64, error)) []Result {
	results := make([]Result, len(devices))
	for i, d := range devices {
		pct, err := op(d)
		if err != nil {
			log.WithError(err).WithField("device", d.Name).Warn("operation failed")
		}
		results[i] = Result{Device: d, Percent: pct, Err: err}
	}
	return results
}
