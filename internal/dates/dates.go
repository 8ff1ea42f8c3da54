package dates

import (
	"fmt"
	"time"
)

const (
	// DayFormat is the canonical calendar-day key layout.
	DayFormat = "2006-01-02"
	// MonthFormat is the canonical month key layout.
	MonthFormat = "2006-01"
)

// DayKey converts an instant to its calendar-day key in the given location.
// The key is always derived from local wall-clock date components, never from
// a UTC conversion, so the user's midnight is the day boundary. Zero padding
// makes lexicographic comparison equal chronological comparison.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayFormat)
}

// ParseDay parses a day key at midnight in the given location.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date key %q: %w", day, err)
	}
	return t, nil
}

// ValidDayKey reports whether s is a well-formed YYYY-MM-DD day key.
func ValidDayKey(s string) bool {
	if len(s) != len(DayFormat) {
		return false
	}
	_, err := time.Parse(DayFormat, s)
	return err == nil
}

// ValidMonthKey reports whether s is a well-formed YYYY-MM month key.
func ValidMonthKey(s string) bool {
	if len(s) != len(MonthFormat) {
		return false
	}
	_, err := time.Parse(MonthFormat, s)
	return err == nil
}

// MonthBounds returns the first and last day keys of the month plus the
// ordered list of every day key in between, inclusive.
func MonthBounds(ym string, loc *time.Location) (first, last string, days []string, err error) {
	start, err := time.ParseInLocation(MonthFormat, ym, loc)
	if err != nil {
		return "", "", nil, fmt.Errorf("malformed month key %q: %w", ym, err)
	}

	end := start.AddDate(0, 1, 0)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}
	return days[0], days[len(days)-1], days, nil
}

// DaysBetween returns the whole-day count from day key a to day key b.
// Negative when b is before a. Both keys must be well formed.
func DaysBetween(a, b string) int {
	ta, _ := time.Parse(DayFormat, a)
	tb, _ := time.Parse(DayFormat, b)
	return int(tb.Sub(ta).Hours() / 24)
}

// Clock supplies the current instant and "today" as a day key so calculators
// never read the wall clock directly and tests can pin a fixed date.
type Clock interface {
	Now() time.Time
	Today() string
}

type realClock struct {
	loc *time.Location
}

// NewClock returns a Clock that evaluates "today" in the given location.
func NewClock(loc *time.Location) Clock {
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c realClock) Today() string {
	return DayKey(time.Now(), c.loc)
}

// FixedClock is a Clock pinned to a single day key, for tests. Now reports
// noon UTC of that day.
type FixedClock string

func (c FixedClock) Now() time.Time {
	t, _ := time.Parse(DayFormat, string(c))
	return t.Add(12 * time.Hour)
}

func (c FixedClock) Today() string {
	return string(c)
}
