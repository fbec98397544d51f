// Package configuration parses the command line into a Configuration for the
// command runner.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clambin/brightctl/internal/device"
	"github.com/clambin/brightctl/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Configuration holds the selected command and everything it needs to run.
type Configuration struct {
	Debug     bool
	Command   string
	Value     float64
	Format    string
	StateFile string
	Filter    device.Filter
	Roots     device.Roots
}

// GetConfigFromArgs parses the provided command line arguments.
func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration
	var name, class, stateDir string

	a := kingpin.New(filepath.Base(os.Args[0]), "control backlight and LED brightness")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("device", "Only act on the device with this name").StringVar(&name)
	a.Flag("class", "Only act on devices of this class").EnumVar(&class, "backlight", "leds")
	a.Flag("format", "Output format").Default("plain").EnumVar(&cfg.Format, "plain", "csv", "json")
	a.Flag("state-dir", "Directory holding the saved brightness state").Envar("BRIGHTCTL_STATE_DIR").StringVar(&stateDir)

	a.Command("get", "Print the current brightness in percent")
	set := a.Command("set", "Set the brightness to a percentage")
	set.Arg("percent", "target brightness in percent").Required().Float64Var(&cfg.Value)
	add := a.Command("add", "Raise the brightness by a number of percentage points")
	add.Arg("delta", "percentage points to add").Required().Float64Var(&cfg.Value)
	sub := a.Command("sub", "Lower the brightness by a number of percentage points")
	sub.Arg("delta", "percentage points to subtract").Required().Float64Var(&cfg.Value)
	a.Command("info", "Print the full record of each matching device")
	a.Command("save", "Save the current brightness of the matching devices")
	a.Command("restore", "Restore the previously saved brightness")

	command, err := a.Parse(args)
	if err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}

	cfg.Command = command
	cfg.Filter = device.Filter{Name: name, Class: device.Class(class)}
	cfg.Roots = device.DefaultRoots()
	cfg.StateFile = stateFilename(stateDir)
	return cfg, nil
}

// stateFilename resolves the state file location: the state directory flag /
// environment variable if set, then $XDG_STATE_HOME, then ~/.local/state.
func stateFilename(stateDir string) string {
	if stateDir == "" {
		stateDir = os.Getenv("XDG_STATE_HOME")
	}
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "brightctl", "devices.yaml")
}
