package availability

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC) // a Monday
}

func TestSlots_EvenLadder(t *testing.T) {
	// 09:00-12:00, 30 minute slots, 10 minute breaks -> step 40.
	slots := Slots(at(9, 0), at(12, 0), 30*time.Minute, 40*time.Minute, nil)

	want := []time.Time{at(9, 0), at(9, 40), at(10, 20), at(11, 0)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(slots), slots)
	}
	for i := range want {
		if !slots[i].Equal(want[i]) {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i].Format("15:04"), slots[i].Format("15:04"))
		}
	}
}

func TestSlots_LastSlotMustFitEntirely(t *testing.T) {
	// 11:40+30 = 12:10 > 12:00, so 11:40 is excluded; 11:30+30 = 12:00 fits.
	slots := Slots(at(11, 0), at(12, 0), 30*time.Minute, 30*time.Minute, nil)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[1].Equal(at(11, 30)) {
		t.Fatalf("expected last slot 11:30, got %s", slots[1].Format("15:04"))
	}
}

func TestSlots_BusyIntervalExcluded(t *testing.T) {
	busy := []Interval{{Start: at(10, 20), End: at(10, 50)}}
	slots := Slots(at(9, 0), at(12, 0), 30*time.Minute, 40*time.Minute, busy)

	want := []time.Time{at(9, 0), at(9, 40), at(11, 0)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(slots), slots)
	}
	for i := range want {
		if !slots[i].Equal(want[i]) {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i].Format("15:04"), slots[i].Format("15:04"))
		}
	}
}

func TestSlots_NonPositiveDuration(t *testing.T) {
	if got := Slots(at(9, 0), at(12, 0), 0, 30*time.Minute, nil); got != nil {
		t.Fatalf("expected no slots for zero duration, got %v", got)
	}
	if got := Slots(at(9, 0), at(12, 0), 30*time.Minute, 0, nil); got != nil {
		t.Fatalf("expected no slots for zero step, got %v", got)
	}
}

func TestOverlaps(t *testing.T) {
	busy := Interval{Start: at(10, 0), End: at(10, 30)}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"disjoint before", at(9, 0), at(9, 30), false},
		{"touching end-to-start", at(9, 30), at(10, 0), false},
		{"partial overlap", at(9, 45), at(10, 15), true},
		{"contained", at(10, 5), at(10, 25), true},
		{"same start", at(10, 0), at(10, 30), true},
		{"touching start-to-end", at(10, 30), at(11, 0), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.start, tc.end, busy); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
