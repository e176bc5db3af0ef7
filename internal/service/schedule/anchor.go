package schedule

import (
	"time"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

// FirstReminderFromLastDrink derives the anchor: the first reminder instant
// following the most recent logged drink. The second return value is false
// when no anchor exists for the reference day and the plan should fall back
// to the window's natural slot sequence.
//
// Interval mode clamps the candidate (lastDrink + interval) into the
// reference day's window: before the start it snaps to the start, past the
// end there is no anchor. Once-per-day mode anchors to the drink's
// time-of-day on the following day and snaps or rolls into whichever day's
// window that candidate lands in, so the single daily reminder tracks when
// the user actually drinks rather than the window start.
func FirstReminderFromLastDrink(lastDrink time.Time, interval domain.Interval, window domain.Window, referenceDay time.Time) (time.Time, bool) {
	if !window.Valid() || !interval.IsValid() {
		return time.Time{}, false
	}

	if interval.IsOnceDaily() {
		candidate := nextDaySameClock(lastDrink)
		if candidate.Before(window.StartOn(candidate)) {
			return window.StartOn(candidate), true
		}
		if candidate.After(window.EndOn(candidate)) {
			return window.StartOn(nextDay(candidate)), true
		}
		return candidate, true
	}

	candidate := minutesAfter(lastDrink, interval.Minutes())
	start := window.StartOn(referenceDay)
	if candidate.Before(start) {
		return start, true
	}
	if candidate.After(window.EndOn(referenceDay)) {
		return time.Time{}, false
	}
	return candidate, true
}

// nextDaySameClock returns the same wall-clock minute on the following
// calendar day. Sub-minute precision of the drink timestamp is dropped;
// reminders fire on whole minutes.
func nextDaySameClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, t.Hour(), t.Minute(), 0, 0, t.Location())
}
