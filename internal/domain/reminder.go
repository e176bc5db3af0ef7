package domain

import (
	"fmt"
	"time"
)

const (
	TodayIDPrefix    = "today"
	TomorrowIDPrefix = "tomorrow"
)

// ReminderID builds the sink identifier for the index-th reminder of a day
// bucket, e.g. "today_0". The scheme is part of the observable contract;
// test harnesses use it to distinguish the two day buckets.
func ReminderID(prefix string, index int) string {
	return fmt.Sprintf("%s_%d", prefix, index)
}

// ReminderRequest is one one-shot notification submitted to the sink.
type ReminderRequest struct {
	ID     string    `json:"id"`
	FireAt time.Time `json:"fire_at"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	Sound  string    `json:"sound,omitempty"`
	Badge  int       `json:"badge"`
}

// Plan is the ephemeral output of one scheduling pass: ordered future
// reminder instants for the rest of today and the whole of tomorrow. It is
// recomputed from scratch on every pass and fully replaces whatever was
// previously submitted to the sink.
type Plan struct {
	Today    []time.Time `json:"today"`
	Tomorrow []time.Time `json:"tomorrow"`
}

func NewPlan() *Plan {
	return &Plan{
		Today:    make([]time.Time, 0),
		Tomorrow: make([]time.Time, 0),
	}
}

func (p *Plan) Total() int {
	return len(p.Today) + len(p.Tomorrow)
}

// DayKey returns the local-day bucket key used for intake counters.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
