package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=settings_repository.go -destination=mock.go -package=domain

// SettingsRepository stores per-user reminder settings and daily intake
// counters. Day keys are local-day buckets produced by DayKey.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (*ReminderSettings, error)
	SaveSettings(ctx context.Context, userID string, settings *ReminderSettings) error
	TouchLastDrink(ctx context.Context, userID string, at time.Time) error
	AddIntake(ctx context.Context, userID, dayKey string, amountML int) (int, error)
	IntakeForDay(ctx context.Context, userID, dayKey string) (int, error)
}
