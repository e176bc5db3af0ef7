package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

const (
	settingsKeyPrefix = "hydration:settings:"
	intakeKeyPrefix   = "hydration:intake:"

	// Intake counters only matter for the current day; keep them around a
	// couple of days for the history endpoint of a future client sync.
	intakeTTL = 48 * time.Hour
)

type settingsRecord struct {
	StartHour       int        `json:"start_hour"`
	EndHour         int        `json:"end_hour"`
	IntervalMinutes int        `json:"interval_minutes"`
	SoundName       string     `json:"sound_name"`
	DailyGoalML     int        `json:"daily_goal_ml"`
	LastDrinkAt     *time.Time `json:"last_drink_at,omitempty"`
}

type settingsRepository struct {
	client *redis.Client
}

func NewSettingsRepository(client *redis.Client) domain.SettingsRepository {
	return &settingsRepository{
		client: client,
	}
}

func (r *settingsRepository) GetSettings(ctx context.Context, userID string) (*domain.ReminderSettings, error) {
	key := settingsKeyPrefix + userID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}

	var record settingsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidSettingsData
	}

	return &domain.ReminderSettings{
		Window:          domain.NewWindow(record.StartHour, record.EndHour),
		IntervalMinutes: domain.Interval(record.IntervalMinutes),
		SoundName:       record.SoundName,
		DailyGoalML:     record.DailyGoalML,
		LastDrinkAt:     record.LastDrinkAt,
	}, nil
}

func (r *settingsRepository) SaveSettings(ctx context.Context, userID string, settings *domain.ReminderSettings) error {
	if settings == nil {
		return ErrInvalidSettingsData
	}

	key := settingsKeyPrefix + userID

	record := settingsRecord{
		StartHour:       settings.Window.StartHour,
		EndHour:         settings.Window.EndHour,
		IntervalMinutes: settings.IntervalMinutes.Minutes(),
		SoundName:       settings.SoundName,
		DailyGoalML:     settings.DailyGoalML,
		LastDrinkAt:     settings.LastDrinkAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidSettingsData
	}

	return r.client.Set(ctx, key, data, 0).Err()
}

func (r *settingsRepository) TouchLastDrink(ctx context.Context, userID string, at time.Time) error {
	settings, err := r.GetSettings(ctx, userID)
	if err != nil {
		return err
	}

	settings.LastDrinkAt = &at
	return r.SaveSettings(ctx, userID, settings)
}

func (r *settingsRepository) AddIntake(ctx context.Context, userID, dayKey string, amountML int) (int, error) {
	key := intakeKeyPrefix + userID + ":" + dayKey

	pipe := r.client.TxPipeline()
	incr := pipe.IncrBy(ctx, key, int64(amountML))
	pipe.Expire(ctx, key, intakeTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return int(incr.Val()), nil
}

func (r *settingsRepository) IntakeForDay(ctx context.Context, userID, dayKey string) (int, error) {
	key := intakeKeyPrefix + userID + ":" + dayKey

	val, err := r.client.Get(ctx, key).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	return val, nil
}
