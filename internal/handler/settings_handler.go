package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmhodges/clock"

	"github.com/sipwell/reminder-scheduling/internal/config"
	"github.com/sipwell/reminder-scheduling/internal/domain"
	"github.com/sipwell/reminder-scheduling/internal/infra/sound"
	"github.com/sipwell/reminder-scheduling/internal/observability/tracing"
)

type SettingsHandler struct {
	scheduler    ReminderScheduler
	settingsRepo domain.SettingsRepository
	defaults     *config.ReminderConfig
	sounds       *sound.Resolver
	clk          clock.Clock
	loc          *time.Location
}

func NewSettingsHandler(
	scheduler ReminderScheduler,
	settingsRepo domain.SettingsRepository,
	defaults *config.ReminderConfig,
	sounds *sound.Resolver,
	clk clock.Clock,
	loc *time.Location,
) *SettingsHandler {
	return &SettingsHandler{
		scheduler:    scheduler,
		settingsRepo: settingsRepo,
		defaults:     defaults,
		sounds:       sounds,
		clk:          clk,
		loc:          loc,
	}
}

func (h *SettingsHandler) HandleGetSettings(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	settings, err := h.settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			c.JSON(http.StatusOK, settingsResponse{
				StartHour:       h.defaults.StartHour,
				EndHour:         h.defaults.EndHour,
				IntervalMinutes: h.defaults.IntervalMinutes,
				SoundName:       h.defaults.SoundName,
				DailyGoalML:     h.defaults.DailyGoalML,
			})
			return
		}
		slog.ErrorContext(ctx, "failed to load settings",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, newSettingsResponse(settings))
}

// HandleUpdateSettings replaces the stored settings and immediately
// reschedules so the pending plan reflects the new window and cadence.
// A negative interval is stored as-is; the scheduling pass treats it as
// "nothing to schedule" rather than rejecting the update.
func (h *SettingsHandler) HandleUpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &domain.ReminderSettings{
		Window:          domain.NewWindow(req.StartHour, req.EndHour),
		IntervalMinutes: domain.Interval(req.IntervalMinutes),
		SoundName:       req.SoundName,
		DailyGoalML:     req.DailyGoalML,
	}
	if err := settings.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.sounds.Known(settings.SoundName) {
		slog.DebugContext(ctx, "unknown sound name, platform default will be used",
			slog.String("sound_name", settings.SoundName),
		)
	}

	// Keep the last-drink anchor across settings updates.
	if existing, err := h.settingsRepo.GetSettings(ctx, userID); err == nil {
		settings.LastDrinkAt = existing.LastDrinkAt
	} else if !errors.Is(err, domain.ErrSettingsNotFound) {
		slog.ErrorContext(ctx, "failed to load settings",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	if err := h.settingsRepo.SaveSettings(ctx, userID, settings); err != nil {
		slog.ErrorContext(ctx, "failed to save settings",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	now := h.clk.Now().In(h.loc)
	passID := uuid.NewString()

	spanCtx, span := tracing.StartSchedulePassSpan(ctx, "schedule_today_and_tomorrow", now)
	plan := h.scheduler.ScheduleForTodayAndTomorrow(spanCtx, *settings)
	tracing.RecordSchedulePassResult(span, len(plan.Today), len(plan.Tomorrow), nil)
	span.End()

	slog.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID),
		slog.String("pass_id", passID),
		slog.Int("start_hour", settings.Window.StartHour),
		slog.Int("end_hour", settings.Window.EndHour),
		slog.Int("interval_minutes", settings.IntervalMinutes.Minutes()),
	)

	c.JSON(http.StatusOK, newSettingsResponse(settings))
}
