package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// ErrInvalid marks malformed input rejected before any computation. Callers
// can test for it with errors.Is; the engine never repairs bad input
// silently.
var ErrInvalid = errors.New("invalid input")

const maxTitleLength = 100

// DayKey validates a YYYY-MM-DD calendar-day key.
func DayKey(s string) error {
	if !dates.ValidDayKey(s) {
		return fmt.Errorf("%w: malformed date key %q, expected YYYY-MM-DD", ErrInvalid, s)
	}
	return nil
}

// MonthKey validates a YYYY-MM month key.
func MonthKey(s string) error {
	if !dates.ValidMonthKey(s) {
		return fmt.Errorf("%w: malformed month key %q, expected YYYY-MM", ErrInvalid, s)
	}
	return nil
}

// Title validates a template or task title.
func Title(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalid)
	}
	if len(trimmed) > maxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalid, maxTitleLength)
	}
	return nil
}

// Group validates a routine group tag.
func Group(g models.Group) error {
	for _, known := range models.Groups {
		if g == known {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown group %q", ErrInvalid, g)
}

// Weight validates a template or task weight.
func Weight(w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %v", ErrInvalid, w)
	}
	return nil
}

// PaymentDay validates a fixed cost's day of month.
func PaymentDay(d int) error {
	if d < 1 || d > 31 {
		return fmt.Errorf("%w: payment day must be between 1 and 31, got %d", ErrInvalid, d)
	}
	return nil
}

// Email validates an account email address.
func Email(s string) error {
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || strings.Contains(s, " ") {
		return fmt.Errorf("%w: malformed email address %q", ErrInvalid, s)
	}
	return nil
}

// Password validates an account password.
func Password(s string) error {
	if len(s) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalid)
	}
	return nil
}
