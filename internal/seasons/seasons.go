// Package seasons measures a life in minutes.
package seasons

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loanworks/internal/words"
)

// ErrFutureDate is returned when the birth date lies after the reference day.
var ErrFutureDate = errors.New("seasons: date of birth is in the future")

const minutesPerDay = 24 * 60

// Minutes returns the number of whole-day minutes between born and today.
// Both times are truncated to midnight first, so the time of day never
// shifts the answer.
func Minutes(born, today time.Time) (int64, error) {
	b := midnight(born)
	d := midnight(today)
	if d.Before(b) {
		return 0, ErrFutureDate
	}
	days := int64(d.Sub(b) / (24 * time.Hour))
	return days * minutesPerDay, nil
}

// Phrase words the minute count as a sentence fragment, capitalized:
// "Five hundred twenty-five thousand, six hundred minutes".
func Phrase(born, today time.Time) (string, error) {
	minutes, err := Minutes(born, today)
	if err != nil {
		return "", err
	}
	worded := words.Cardinal(minutes)
	return fmt.Sprintf("%s%s minutes", strings.ToUpper(worded[:1]), worded[1:]), nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
