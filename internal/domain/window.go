package domain

import (
	"time"
)

// Window is the daily wall-clock hour range during which reminders may fire.
// Hours are reinterpreted per calendar day in the caller's location, so the
// start hour means the same local time every day regardless of DST shifts.
type Window struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

func NewWindow(startHour, endHour int) Window {
	return Window{
		StartHour: startHour,
		EndHour:   endHour,
	}
}

// Valid reports whether the window can produce slots on a day. An inverted
// window (start after end) is not an error; it simply yields an empty day.
func (w Window) Valid() bool {
	if w.StartHour < 0 || w.StartHour > 23 {
		return false
	}
	if w.EndHour < 0 || w.EndHour > 23 {
		return false
	}
	return w.StartHour <= w.EndHour
}

// StartOn returns the window start instant on the calendar day of day,
// in day's location.
func (w Window) StartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), w.StartHour, 0, 0, 0, day.Location())
}

// EndOn returns the window end instant on the calendar day of day.
func (w Window) EndOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), w.EndHour, 0, 0, 0, day.Location())
}

// Contains reports whether t lies within the window on t's own day,
// boundaries included.
func (w Window) Contains(t time.Time) bool {
	if !w.Valid() {
		return false
	}
	return !t.Before(w.StartOn(t)) && !t.After(w.EndOn(t))
}
