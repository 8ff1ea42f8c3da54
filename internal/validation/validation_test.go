package validation

import (
	"errors"
	"testing"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

func TestDayKey(t *testing.T) {
	if err := DayKey("2024-01-05"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, s := range []string{"2024-1-5", "2024-02-30", "tomorrow", ""} {
		err := DayKey(s)
		if err == nil {
			t.Errorf("expected error for %q", s)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid for %q, got %v", s, err)
		}
	}
}

func TestMonthKey(t *testing.T) {
	if err := MonthKey("2024-02"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := MonthKey("2024-02-01"); err == nil {
		t.Error("expected error for day key passed as month key")
	}
}

func TestTitle(t *testing.T) {
	if err := Title("Morning jog"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Title("   "); err == nil {
		t.Error("expected error for blank title")
	}
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	if err := Title(string(long)); err == nil {
		t.Error("expected error for overlong title")
	}
}

func TestGroup(t *testing.T) {
	for _, g := range models.Groups {
		if err := Group(g); err != nil {
			t.Errorf("unexpected error for %s: %v", g, err)
		}
	}
	if err := Group("NIGHT"); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestWeight(t *testing.T) {
	if err := Weight(1.5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, w := range []float64{0, -1} {
		if err := Weight(w); err == nil {
			t.Errorf("expected error for weight %v", w)
		}
	}
}

func TestPaymentDay(t *testing.T) {
	for _, d := range []int{1, 15, 31} {
		if err := PaymentDay(d); err != nil {
			t.Errorf("unexpected error for %d: %v", d, err)
		}
	}
	for _, d := range []int{0, 32, -5} {
		if err := PaymentDay(d); err == nil {
			t.Errorf("expected error for %d", d)
		}
	}
}

func TestEmail(t *testing.T) {
	if err := Email("user@example.com"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, s := range []string{"userexample.com", "@example.com", "user@", "a b@c.d"} {
		if err := Email(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := Password("longenough"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Password("short"); err == nil {
		t.Error("expected error for short password")
	}
}
