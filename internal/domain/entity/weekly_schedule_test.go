package entity

import (
	"errors"
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  time.Weekday
	}{
		{"MONDAY", time.Monday},
		{"sunday", time.Sunday},
		{"  Friday ", time.Friday},
	}
	for _, tc := range tests {
		got, err := ParseWeekday(tc.input)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	for _, input := range []string{"", "FUNDAY", "MON"} {
		if _, err := ParseWeekday(input); !errors.Is(err, ErrInvalidWeekday) {
			t.Errorf("ParseWeekday(%q): expected ErrInvalidWeekday, got %v", input, err)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(time.Wednesday); got != "WEDNESDAY" {
		t.Fatalf("WeekdayName(Wednesday) = %q", got)
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if hour != 9 || minute != 30 {
		t.Fatalf("ParseClock(09:30) = %d:%d", hour, minute)
	}

	for _, input := range []string{"", "9:30am", "25:00", "12:60"} {
		if _, _, err := ParseClock(input); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("ParseClock(%q): expected ErrInvalidClock, got %v", input, err)
		}
	}
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, loc)
	got, err := At(date, "14:15", loc)
	if err != nil {
		t.Fatalf("At: %v", err)
	}

	want := time.Date(2026, time.September, 7, 14, 15, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("At() = %v, want %v", got, want)
	}

	if _, err := At(date, "2pm", loc); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock for a malformed clock, got %v", err)
	}
}

func TestScheduleStep(t *testing.T) {
	s := &WeeklySchedule{SlotDurationMin: 30, BreakDurationMin: 10}
	if got := s.SlotDuration(); got != 30*time.Minute {
		t.Fatalf("SlotDuration() = %v", got)
	}
	if got := s.Step(); got != 40*time.Minute {
		t.Fatalf("Step() = %v", got)
	}

	noBreak := &WeeklySchedule{SlotDurationMin: 20}
	if got := noBreak.Step(); got != 20*time.Minute {
		t.Fatalf("Step() without break = %v", got)
	}
}
