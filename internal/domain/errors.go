package domain

import "errors"

var (
	ErrSettingsNotFound  = errors.New("reminder settings not found")
	ErrHourOutOfRange    = errors.New("window hour out of range [0,23]")
	ErrNegativeDailyGoal = errors.New("daily goal must not be negative")
)
