package domain

import (
	"time"
)

// ReminderSettings is the caller-held configuration a scheduling pass
// consumes. LastDrinkAt, when present, anchors the first reminder of the
// plan; when absent the plan starts from the window's natural first slot.
type ReminderSettings struct {
	Window          Window     `json:"window"`
	IntervalMinutes Interval   `json:"interval_minutes"`
	SoundName       string     `json:"sound_name"`
	DailyGoalML     int        `json:"daily_goal_ml"`
	LastDrinkAt     *time.Time `json:"last_drink_at,omitempty"`
}

func (s *ReminderSettings) Validate() error {
	if s.Window.StartHour < 0 || s.Window.StartHour > 23 {
		return ErrHourOutOfRange
	}
	if s.Window.EndHour < 0 || s.Window.EndHour > 23 {
		return ErrHourOutOfRange
	}
	if s.DailyGoalML < 0 {
		return ErrNegativeDailyGoal
	}
	return nil
}
