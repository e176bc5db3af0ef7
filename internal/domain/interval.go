package domain

import (
	"time"
)

// Interval is the reminder cadence in minutes. Zero is the once-per-day
// sentinel; negative values are invalid and turn a scheduling pass into a
// no-op rather than an error.
type Interval int

const OnceDaily Interval = 0

func (i Interval) IsOnceDaily() bool {
	return i == OnceDaily
}

func (i Interval) IsValid() bool {
	return i >= 0
}

func (i Interval) Minutes() int {
	return int(i)
}

// Step is the duration between the last drink and the first reminder
// derived from it: the interval itself, or a full day in once-per-day mode.
func (i Interval) Step() time.Duration {
	if i.IsOnceDaily() {
		return 24 * time.Hour
	}
	return time.Duration(i) * time.Minute
}
