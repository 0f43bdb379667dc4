package availability

import "time"

// Interval is a half-open [Start, End) time window.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the candidate window [start, end) collides with
// busy. Half-open interval overlap, plus an explicit equal-start match so a
// zero-length edge case can never slip two bookings onto the same start.
func Overlaps(start, end time.Time, busy Interval) bool {
	if start.Equal(busy.Start) {
		return true
	}
	return busy.Start.Before(end) && busy.End.After(start)
}

// OverlapsAny reports whether [start, end) collides with any busy interval.
func OverlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b) {
			return true
		}
	}
	return false
}

// Slots returns the ladder of bookable start times between dayStart and
// dayEnd: the first candidate is dayStart, consecutive candidates are step
// apart, and a candidate is emitted only when a full slot of length duration
// still fits before dayEnd. Candidates colliding with a busy interval are
// skipped. The result is strictly increasing and is a pure function of its
// inputs.
func Slots(dayStart, dayEnd time.Time, duration, step time.Duration, busy []Interval) []time.Time {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var slots []time.Time
	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {
		if OverlapsAny(cur, cur.Add(duration), busy) {
			continue
		}
		slots = append(slots, cur)
	}
	return slots
}
