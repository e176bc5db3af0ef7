package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmhodges/clock"

	"github.com/sipwell/reminder-scheduling/internal/config"
	"github.com/sipwell/reminder-scheduling/internal/domain"
	"github.com/sipwell/reminder-scheduling/internal/observability/tracing"
)

const (
	userIDHeader  = "X-User-ID"
	defaultUserID = "default"
)

type ScheduleHandler struct {
	scheduler    ReminderScheduler
	settingsRepo domain.SettingsRepository
	defaults     *config.ReminderConfig
	clk          clock.Clock
	loc          *time.Location
}

func NewScheduleHandler(
	scheduler ReminderScheduler,
	settingsRepo domain.SettingsRepository,
	defaults *config.ReminderConfig,
	clk clock.Clock,
	loc *time.Location,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduler:    scheduler,
		settingsRepo: settingsRepo,
		defaults:     defaults,
		clk:          clk,
		loc:          loc,
	}
}

// HandleSchedule recomputes and resubmits the full today-and-tomorrow plan.
// Invoked on app launch and whenever settings change client-side.
func (h *ScheduleHandler) HandleSchedule(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	settings, err := h.loadSettings(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load settings",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	passID := uuid.NewString()
	now := h.clk.Now().In(h.loc)

	spanCtx, span := tracing.StartSchedulePassSpan(ctx, "schedule_today_and_tomorrow", now)
	plan := h.scheduler.ScheduleForTodayAndTomorrow(spanCtx, *settings)
	tracing.RecordSchedulePassResult(span, len(plan.Today), len(plan.Tomorrow), nil)
	span.End()

	c.JSON(http.StatusOK, planResponse{
		PassID:   passID,
		Today:    plan.Today,
		Tomorrow: plan.Tomorrow,
	})
}

// HandleScheduleTomorrow is the goal-met path: clears today's remaining
// reminders and schedules tomorrow's natural sequence only.
func (h *ScheduleHandler) HandleScheduleTomorrow(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	settings, err := h.loadSettings(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load settings",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	passID := uuid.NewString()
	now := h.clk.Now().In(h.loc)

	spanCtx, span := tracing.StartSchedulePassSpan(ctx, "schedule_tomorrow", now)
	plan := h.scheduler.ScheduleForTomorrow(spanCtx, *settings)
	tracing.RecordSchedulePassResult(span, len(plan.Today), len(plan.Tomorrow), nil)
	span.End()

	c.JSON(http.StatusOK, planResponse{
		PassID:   passID,
		Today:    plan.Today,
		Tomorrow: plan.Tomorrow,
	})
}

// HandleCancelAll clears every pending reminder and resets the badge.
func (h *ScheduleHandler) HandleCancelAll(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.clk.Now().In(h.loc)

	spanCtx, span := tracing.StartSchedulePassSpan(ctx, "cancel_all", now)
	h.scheduler.CancelAll(spanCtx)
	tracing.RecordSchedulePassResult(span, 0, 0, nil)
	span.End()

	c.Status(http.StatusNoContent)
}

// loadSettings falls back to the configured defaults for a user with no
// stored settings yet.
func (h *ScheduleHandler) loadSettings(ctx context.Context, userID string) (*domain.ReminderSettings, error) {
	settings, err := h.settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return h.defaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

func (h *ScheduleHandler) defaultSettings() *domain.ReminderSettings {
	return &domain.ReminderSettings{
		Window:          domain.NewWindow(h.defaults.StartHour, h.defaults.EndHour),
		IntervalMinutes: domain.Interval(h.defaults.IntervalMinutes),
		SoundName:       h.defaults.SoundName,
		DailyGoalML:     h.defaults.DailyGoalML,
	}
}

func userIDFrom(c *gin.Context) string {
	if id := c.GetHeader(userIDHeader); id != "" {
		return id
	}
	return defaultUserID
}
