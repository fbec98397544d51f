// Package percent converts between raw brightness values and perceptual
// percentages. Human brightness perception is logarithmic, so a linear change
// in percent maps to an exponential change in the raw value.
package percent

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateDevice indicates a device whose maximum brightness is too small
// for perceptual scaling (a single-step device has no meaningful percentage).
var ErrDegenerateDevice = errors.New("maximum brightness must be greater than 1")

// FromRaw converts a raw brightness value to a perceptual percentage.
// A raw value of zero maps to zero percent.
func FromRaw(raw, max int) (float64, error) {
	if max <= 1 {
		return 0, fmt.Errorf("max brightness %d: %w", max, ErrDegenerateDevice)
	}
	if raw <= 0 {
		return 0, nil
	}
	return math.Log10(float64(raw)) / math.Log10(float64(max)) * 100, nil
}

// ToRaw converts a perceptual percentage to a raw brightness value, rounded to
// the nearest integer and clamped to [0, max]. 100 percent always maps to
// exactly max.
func ToRaw(pct float64, max int) (int, error) {
	if max <= 1 {
		return 0, fmt.Errorf("max brightness %d: %w", max, ErrDegenerateDevice)
	}
	if pct <= 0 {
		return 0, nil
	}
	raw := int(math.Round(math.Pow(10, pct/100*math.Log10(float64(max)))))
	if raw > max {
		raw = max
	}
	return raw, nil
}
