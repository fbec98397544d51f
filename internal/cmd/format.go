package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/clambin/brightctl/internal/control"
	"github.com/clambin/brightctl/internal/device"
)

type percentRecord struct {
	Name    string       `json:"name"`
	Class   device.Class `json:"class"`
	Percent float64      `json:"percent"`
}

// writeResults writes one line per device with its resulting percentage, as
// plain text, CSV or JSON lines.
func writeResults(w io.Writer, format string, results []control.Result) error {
	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		for _, r := range results {
			if err := cw.Write([]string{r.Device.Name, string(r.Device.Class), formatPercent(r.Percent)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "json":
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(percentRecord{Name: r.Device.Name, Class: r.Device.Class, Percent: r.Percent}); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s %s\n", r.Device.Name, formatPercent(r.Percent)); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeDevices writes the full record of each device (the info command).
func writeDevices(w io.Writer, format string, devices []device.Device) error {
	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		for _, d := range devices {
			record := []string{d.Name, string(d.Class), strconv.Itoa(d.Brightness), strconv.Itoa(d.MaxBrightness), d.Path}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "json":
		enc := json.NewEncoder(w)
		for _, d := range devices {
			if err := enc.Encode(d); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, d := range devices {
			if _, err := fmt.Fprintf(w, "%s %s %d/%d %s\n", d.Name, d.Class, d.Brightness, d.MaxBrightness, d.Path); err != nil {
				return err
			}
		}
		return nil
	}
}

func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64)
}
