package config

import (
	"os"
	"strconv"
)

const (
	startHourEnv       = "REMINDER_START_HOUR"
	endHourEnv         = "REMINDER_END_HOUR"
	intervalMinutesEnv = "REMINDER_INTERVAL_MINUTES"
	soundNameEnv       = "REMINDER_SOUND"
	dailyGoalMLEnv     = "DAILY_GOAL_ML"

	defaultStartHour       = 8
	defaultEndHour         = 22
	defaultIntervalMinutes = 60
	defaultSoundName       = "water-drop"
	defaultDailyGoalML     = 2000
)

// ReminderConfig holds the defaults applied when a user has no stored
// settings yet.
type ReminderConfig struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
	SoundName       string
	DailyGoalML     int
}

func LoadReminderConfig() *ReminderConfig {
	startHour := defaultStartHour
	if v := os.Getenv(startHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 23 {
			startHour = parsed
		}
	}

	endHour := defaultEndHour
	if v := os.Getenv(endHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 23 {
			endHour = parsed
		}
	}

	intervalMinutes := defaultIntervalMinutes
	if v := os.Getenv(intervalMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			intervalMinutes = parsed
		}
	}

	soundName := os.Getenv(soundNameEnv)
	if soundName == "" {
		soundName = defaultSoundName
	}

	dailyGoalML := defaultDailyGoalML
	if v := os.Getenv(dailyGoalMLEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			dailyGoalML = parsed
		}
	}

	return &ReminderConfig{
		StartHour:       startHour,
		EndHour:         endHour,
		IntervalMinutes: intervalMinutes,
		SoundName:       soundName,
		DailyGoalML:     dailyGoalML,
	}
}
