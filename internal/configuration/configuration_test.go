package configuration_test

import (
	"path/filepath"
	"testing"

	"github.com/clambin/brightctl/internal/configuration"
	"github.com/clambin/brightctl/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		pass bool
		eval func(cfg *configuration.Configuration) bool
	}{
		{
			name: "no command",
			args: []string{},
		},
		{
			name: "invalid command",
			args: []string{"hello"},
		},
		{
			name: "get",
			args: []string{"get"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Command == "get" },
		},
		{
			name: "default format",
			args: []string{"get"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Format == "plain" },
		},
		{
			name: "set with percentage",
			args: []string{"set", "50"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Command == "set" && cfg.Value == 50 },
		},
		{
			name: "set requires a percentage",
			args: []string{"set"},
		},
		{
			name: "sub with delta",
			args: []string{"sub", "20.5"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Command == "sub" && cfg.Value == 20.5 },
		},
		{
			name: "device and class filter",
			args: []string{"--device=platform::fnlock", "--class=leds", "get"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return cfg.Filter == device.Filter{Name: "platform::fnlock", Class: device.LEDs}
			},
		},
		{
			name: "invalid class",
			args: []string{"--class=keyboard", "get"},
		},
		{
			name: "format",
			args: []string{"--format=json", "info"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Format == "json" },
		},
		{
			name: "invalid format",
			args: []string{"--format=xml", "info"},
		},
		{
			name: "debug",
			args: []string{"--debug", "get"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Debug },
		},
		{
			name: "default roots",
			args: []string{"get"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return cfg.Roots[device.Backlight] == "/sys/class/backlight" &&
					cfg.Roots[device.LEDs] == "/sys/class/leds"
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := configuration.GetConfigFromArgs(tt.args)
			if !tt.pass {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.eval != nil {
				assert.True(t, tt.eval(&cfg))
			}
		})
	}
}

func TestGetConfigFromArgs_StateFile(t *testing.T) {
	cfg, err := configuration.GetConfigFromArgs([]string{"--state-dir=/var/lib", "save"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib", "brightctl", "devices.yaml"), cfg.StateFile)

	t.Setenv("BRIGHTCTL_STATE_DIR", "/tmp/brightness")
	cfg, err = configuration.GetConfigFromArgs([]string{"save"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/brightness", "brightctl", "devices.yaml"), cfg.StateFile)

	t.Setenv("BRIGHTCTL_STATE_DIR", "")
	t.Setenv("XDG_STATE_HOME", "/home/user/.state")
	cfg, err = configuration.GetConfigFromArgs([]string{"save"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user/.state", "brightctl", "devices.yaml"), cfg.StateFile)
}
