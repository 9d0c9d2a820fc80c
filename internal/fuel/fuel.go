// Package fuel converts X/Y fractions into fuel-gauge readings.
package fuel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrZeroDenominator is returned when the fraction's denominator is zero.
// Callers that re-prompt can treat it like any other bad input; it is a
// distinct sentinel because an empty tank reads differently from a typo.
var ErrZeroDenominator = errors.New("fuel: denominator is zero")

// Convert parses a fraction in "X/Y" form and returns the tank level as the
// nearest whole percentage. X must not exceed Y (a gauge tops out at 100%).
func Convert(fraction string) (int, error) {
	parts := strings.Split(fraction, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("fuel: %q is not in X/Y form", fraction)
	}
	numerator, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("fuel: numerator %q is not an integer", parts[0])
	}
	denominator, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("fuel: denominator %q is not an integer", parts[1])
	}
	if denominator == 0 {
		return 0, ErrZeroDenominator
	}
	if numerator > denominator {
		return 0, fmt.Errorf("fuel: %q is more than a full tank", fraction)
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100)), nil
}

// Gauge renders a percentage the way a dashboard gauge would: "E" when the
// tank is at 1% or less, "F" at 99% or more, the raw percentage otherwise.
func Gauge(percentage int) string {
	switch {
	case percentage <= 1:
		return "E"
	case percentage >= 99:
		return "F"
	default:
		return fmt.Sprintf("%d%%", percentage)
	}
}
