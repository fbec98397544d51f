// Package cmd wires the brightness commands together: it enumerates and
// filters the devices and dispatches the requested operation.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/clambin/brightctl/internal/configuration"
	"github.com/clambin/brightctl/internal/control"
	"github.com/clambin/brightctl/internal/device"
	"github.com/clambin/brightctl/internal/percent"
	"github.com/clambin/brightctl/internal/state"
	"github.com/clambin/brightctl/version"
	log "github.com/sirupsen/logrus"
)

// Main parses the command line and runs the selected command.
func Main() error {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		return err
	}
	return Run(cfg, os.Stdout)
}

// Run executes the configured command, writing its output to w.
func Run(cfg configuration.Configuration, w io.Writer) error {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithField("version", version.BuildVersion).Debug("starting")

	f := cfg.Filter
	// save/restore act on backlights only unless a class was given
	if (cfg.Command == "save" || cfg.Command == "restore") && f.Class == "" {
		f.Class = device.Backlight
	}

	devices := f.Apply(device.Enumerate(cfg.Roots))
	if len(devices) == 0 {
		if f.Name != "" {
			return fmt.Errorf("device %q not found", f.Name)
		}
		return errors.New("no matching device")
	}

	store := state.Store{Path: cfg.StateFile}

	switch cfg.Command {
	case "get":
		return report(w, cfg.Format, control.Apply(devices, control.Get))
	case "set":
		return report(w, cfg.Format, control.Apply(devices, func(d device.Device) (float64, error) {
			return control.Set(d, cfg.Value)
		}))
	case "add":
		return report(w, cfg.Format, control.Apply(devices, func(d device.Device) (float64, error) {
			return control.Add(d, cfg.Value)
		}))
	case "sub":
		return report(w, cfg.Format, control.Apply(devices, func(d device.Device) (float64, error) {
			return control.Sub(d, cfg.Value)
		}))
	case "info":
		return writeDevices(w, cfg.Format, devices)
	case "save":
		return store.Save(devices)
	case "restore":
		return restore(store, devices)
	}
	return fmt.Errorf("unknown command %q", cfg.Command)
}

// report writes the successful results and aggregates the failed ones.
// A failure on one device does not suppress the output for the others.
// Degenerate devices (single-step, no perceptual scale) are skipped without
// failing the command; they were already warned about.
func report(w io.Writer, format string, results []control.Result) error {
	errs := make([]error, 0, len(results))
	succeeded := make([]control.Result, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			if !errors.Is(r.Err, percent.ErrDegenerateDevice) {
				errs = append(errs, fmt.Errorf("%s: %w", r.Device.Name, r.Err))
			}
			continue
		}
		succeeded = append(succeeded, r)
	}
	if err := writeResults(w, format, succeeded); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// restore writes the saved raw brightness back to each device that has a
// saved record. Saved records for devices that no longer exist are skipped.
func restore(store state.Store, devices []device.Device) error {
	saved, err := store.Load()
	if err != nil {
		return err
	}
	var errs []error
	for _, d := range devices {
		raw, found := saved[d.Name]
		if !found {
			log.WithField("device", d.Name).Debug("no saved brightness")
			continue
		}
		if err = d.SetBrightness(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
			continue
		}
		log.WithFields(log.Fields{"device": d.Name, "raw": raw}).Debug("brightness restored")
	}
	return errors.Join(errs...)
}
