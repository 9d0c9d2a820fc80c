// Package ipaddr validates dotted-quad IPv4 addresses.
package ipaddr

import (
	"strconv"
	"strings"
)

// Validate reports whether s is a dotted-quad IPv4 address: exactly four
// fields, each a run of digits with a value from 0 to 255. It is
// deliberately permissive about leading zeros ("01.2.3.4" is accepted),
// matching how the numbers are read rather than how net parsers canonicalize
// them.
func Validate(s string) bool {
	fields := strings.Split(s, ".")
	if len(fields) != 4 {
		return false
	}
	for _, field := range fields {
		if field == "" || !allDigits(field) {
			return false
		}
		value, err := strconv.Atoi(field)
		if err != nil || value > 255 {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
