package schedule

import (
	"time"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

// DailySlots computes the ordered reminder instants for the window on the
// calendar day of day. Interval mode produces the arithmetic progression
// start, start+iv, start+2iv, ... up to and including the window end, so the
// window start is always part of a valid day even when the interval does not
// evenly divide the span. Once-per-day mode produces exactly the window
// start. An inverted or out-of-range window yields nil.
func DailySlots(day time.Time, window domain.Window, interval domain.Interval) []time.Time {
	if !window.Valid() || !interval.IsValid() {
		return nil
	}

	start := window.StartOn(day)
	if interval.IsOnceDaily() {
		return []time.Time{start}
	}

	return slotsFrom(start, window.EndOn(day), interval)
}

// slotsFrom generates first, first+iv, ... while the slot does not pass end.
// Minute arithmetic goes through time.Date field normalization so slots stay
// on wall-clock boundaries across DST transitions.
func slotsFrom(first, end time.Time, interval domain.Interval) []time.Time {
	if interval.Minutes() <= 0 || first.After(end) {
		return nil
	}

	slots := make([]time.Time, 0)
	for n := 0; ; n++ {
		slot := minutesAfter(first, n*interval.Minutes())
		if slot.After(end) {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// minutesAfter is minutes-of-day arithmetic: the instant offset minutes
// after the wall clock of base, normalized by the calendar.
func minutesAfter(base time.Time, offset int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), base.Minute()+offset, 0, 0, base.Location())
}

// filterAfter keeps only instants strictly after cutoff, preserving order.
// Instants equal to cutoff are dropped so a reminder never fires in the same
// instant it is computed.
func filterAfter(times []time.Time, cutoff time.Time) []time.Time {
	kept := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
