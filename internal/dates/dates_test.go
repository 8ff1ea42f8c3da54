package dates

import (
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %s: %v", name, err)
	}
	return loc
}

func TestDayKeyUsesLocalWallClock(t *testing.T) {
	seoul := mustLoad(t, "Asia/Seoul")

	// 2024-03-01 23:30 UTC is already 2024-03-02 in Seoul (UTC+9).
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	if got := DayKey(instant, seoul); got != "2024-03-02" {
		t.Errorf("expected 2024-03-02, got %s", got)
	}
	if got := DayKey(instant, time.UTC); got != "2024-03-01" {
		t.Errorf("expected 2024-03-01, got %s", got)
	}
}

func TestDayKeyZeroPadding(t *testing.T) {
	instant := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	if got := DayKey(instant, time.UTC); got != "2024-01-05" {
		t.Errorf("expected zero-padded key, got %s", got)
	}
}

func TestValidDayKey(t *testing.T) {
	valid := []string{"2024-01-01", "2024-12-31", "2000-02-29"}
	for _, s := range valid {
		if !ValidDayKey(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"2024-1-1", "2024/01/01", "2024-13-01", "2024-02-30", "20240101", "", "2024-01-01T00:00"}
	for _, s := range invalid {
		if ValidDayKey(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidMonthKey(t *testing.T) {
	if !ValidMonthKey("2024-02") {
		t.Error("expected 2024-02 to be valid")
	}
	for _, s := range []string{"2024-2", "2024-13", "2024-02-01", ""} {
		if ValidMonthKey(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	first, last, days, err := MonthBounds("2024-02", time.UTC)
	if err != nil {
		t.Fatalf("MonthBounds failed: %v", err)
	}
	if first != "2024-02-01" {
		t.Errorf("expected first 2024-02-01, got %s", first)
	}
	// 2024 is a leap year.
	if last != "2024-02-29" {
		t.Errorf("expected last 2024-02-29, got %s", last)
	}
	if len(days) != 29 {
		t.Errorf("expected 29 days, got %d", len(days))
	}
	if days[0] != first || days[len(days)-1] != last {
		t.Error("day list does not match bounds")
	}

	if _, _, _, err := MonthBounds("2024-2", time.UTC); err == nil {
		t.Error("expected error for malformed month key")
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2024-01-01", "2024-01-10"); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if got := DaysBetween("2024-01-10", "2024-01-01"); got != -9 {
		t.Errorf("expected -9, got %d", got)
	}
	if got := DaysBetween("2024-02-28", "2024-03-01"); got != 2 {
		t.Errorf("expected 2 across leap day, got %d", got)
	}
}

func TestLexicographicOrderMatchesChronological(t *testing.T) {
	keys := []string{"2023-12-31", "2024-01-01", "2024-01-02", "2024-02-01", "2024-10-09"}
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			t.Errorf("expected %s < %s", keys[i-1], keys[i])
		}
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock("2024-01-10")
	if c.Today() != "2024-01-10" {
		t.Errorf("expected pinned day, got %s", c.Today())
	}
}
