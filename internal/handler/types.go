package handler

import (
	"context"
	"time"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

// ReminderScheduler is the slice of the scheduling service the handlers
// drive.
type ReminderScheduler interface {
	ScheduleForTodayAndTomorrow(ctx context.Context, settings domain.ReminderSettings) *domain.Plan
	ScheduleForTomorrow(ctx context.Context, settings domain.ReminderSettings) *domain.Plan
	CancelAll(ctx context.Context)
}

type planResponse struct {
	PassID   string      `json:"pass_id"`
	Today    []time.Time `json:"today"`
	Tomorrow []time.Time `json:"tomorrow"`
}

type settingsRequest struct {
	StartHour       int    `json:"start_hour"`
	EndHour         int    `json:"end_hour"`
	IntervalMinutes int    `json:"interval_minutes"`
	SoundName       string `json:"sound_name"`
	DailyGoalML     int    `json:"daily_goal_ml"`
}

type settingsResponse struct {
	StartHour       int        `json:"start_hour"`
	EndHour         int        `json:"end_hour"`
	IntervalMinutes int        `json:"interval_minutes"`
	SoundName       string     `json:"sound_name"`
	DailyGoalML     int        `json:"daily_goal_ml"`
	LastDrinkAt     *time.Time `json:"last_drink_at,omitempty"`
}

type drinkRequest struct {
	AmountML int `json:"amount_ml"`
}

type intakeResponse struct {
	Day         string `json:"day"`
	TotalML     int    `json:"total_ml"`
	DailyGoalML int    `json:"daily_goal_ml"`
	GoalMet     bool   `json:"goal_met"`
}

type drinkResponse struct {
	PassID        string `json:"pass_id"`
	TotalML       int    `json:"total_ml"`
	DailyGoalML   int    `json:"daily_goal_ml"`
	GoalMet       bool   `json:"goal_met"`
	TodayCount    int    `json:"today_count"`
	TomorrowCount int    `json:"tomorrow_count"`
}

func newSettingsResponse(s *domain.ReminderSettings) settingsResponse {
	return settingsResponse{
		StartHour:       s.Window.StartHour,
		EndHour:         s.Window.EndHour,
		IntervalMinutes: s.IntervalMinutes.Minutes(),
		SoundName:       s.SoundName,
		DailyGoalML:     s.DailyGoalML,
		LastDrinkAt:     s.LastDrinkAt,
	}
}
