// Package worktime converts 12-hour working ranges to 24-hour notation.
package worktime

import (
	"fmt"
	"regexp"
	"strconv"
)

// rangePattern matches "9 AM to 5 PM" and "9:30 AM to 5:30 PM" style input.
// Minutes, when present, are already constrained to 00..59 here; hours are
// range-checked separately so "13:15 AM" fails for the right reason.
var rangePattern = regexp.MustCompile(`^(\d{1,2})(?::([0-5]\d))? (AM|PM) to (\d{1,2})(?::([0-5]\d))? (AM|PM)$`)

// Convert rewrites a 12-hour range like "9:00 AM to 5:00 PM" as
// "09:00 to 17:00". Hours must be 1..12; minutes are optional.
func Convert(s string) (string, error) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("worktime: %q is not a valid 12-hour range", s)
	}
	startHour, startMinute, err := to24Hour(m[1], m[2], m[3])
	if err != nil {
		return "", err
	}
	endHour, endMinute, err := to24Hour(m[4], m[5], m[6])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d to %02d:%02d", startHour, startMinute, endHour, endMinute), nil
}

func to24Hour(hourField, minuteField, meridiem string) (hour, minute int, err error) {
	hour, err = strconv.Atoi(hourField)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("worktime: hour %q out of range", hourField)
	}
	if minuteField != "" {
		// The pattern already bounds minutes; Atoi cannot fail here.
		minute, _ = strconv.Atoi(minuteField)
	}
	// Noon and midnight are the special cases: 12 AM is 00, 12 PM is 12.
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return hour, minute, nil
}
