package analysis

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	// 2024-10-07 is a Monday
	for d := 0; d < 5; d++ {
		if !IsBusinessDay(date(2024, 10, 7+d)) {
			t.Fatalf("expected weekday at offset %d", d)
		}
	}
	if IsBusinessDay(date(2024, 10, 12)) { // Saturday
		t.Fatalf("saturday must not be a business day")
	}
	if IsBusinessDay(date(2024, 10, 13)) { // Sunday
		t.Fatalf("sunday must not be a business day")
	}
}

func TestFindBusinessDayZeroOffset(t *testing.T) {
	mon := date(2024, 10, 7)
	if got := FindBusinessDay(mon, 0); !got.Equal(mon) {
		t.Fatalf("business day must be returned unchanged, got %v", got)
	}
	// zero offset from a Saturday walks forward to Monday
	sat := date(2024, 10, 12)
	if got := FindBusinessDay(sat, 0); !got.Equal(date(2024, 10, 14)) {
		t.Fatalf("expected next monday, got %v", got)
	}
}

func TestFindBusinessDayBackward(t *testing.T) {
	// Monday minus 1 calendar day is Sunday; negative offset walks backward
	// to Friday.
	mon := date(2024, 10, 14)
	if got := FindBusinessDay(mon, -1); !got.Equal(date(2024, 10, 11)) {
		t.Fatalf("expected friday, got %v", got)
	}
}

func TestBusinessDaysSkipsWeekends(t *testing.T) {
	// Wednesday + 5 business days = following Wednesday
	wed := date(2024, 10, 9)
	if got := BusinessDays(wed, 5); !got.Equal(date(2024, 10, 16)) {
		t.Fatalf("expected following wednesday, got %v", got)
	}
}

func TestBusinessDaysZero(t *testing.T) {
	sat := date(2024, 10, 12)
	if got := BusinessDays(sat, 0); !got.Equal(sat) {
		t.Fatalf("zero steps must return start, got %v", got)
	}
}

func TestBusinessDaysNegative(t *testing.T) {
	// Monday - 1 business day = previous Friday
	mon := date(2024, 10, 14)
	if got := BusinessDays(mon, -1); !got.Equal(date(2024, 10, 11)) {
		t.Fatalf("expected previous friday, got %v", got)
	}
	// Monday - 5 business days = previous Monday
	if got := BusinessDays(mon, -5); !got.Equal(date(2024, 10, 7)) {
		t.Fatalf("expected previous monday, got %v", got)
	}
}
