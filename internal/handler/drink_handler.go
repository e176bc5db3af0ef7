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
	"github.com/sipwell/reminder-scheduling/internal/observability/tracing"
)

type DrinkHandler struct {
	scheduler    ReminderScheduler
	settingsRepo domain.SettingsRepository
	defaults     *config.ReminderConfig
	clk          clock.Clock
	loc          *time.Location
}

func NewDrinkHandler(
	scheduler ReminderScheduler,
	settingsRepo domain.SettingsRepository,
	defaults *config.ReminderConfig,
	clk clock.Clock,
	loc *time.Location,
) *DrinkHandler {
	return &DrinkHandler{
		scheduler:    scheduler,
		settingsRepo: settingsRepo,
		defaults:     defaults,
		clk:          clk,
		loc:          loc,
	}
}

// HandleLogDrink records one intake event, stamps the last-drink time, and
// replaces the reminder plan: the full today-and-tomorrow pass normally, or
// the tomorrow-only pass once the daily goal is reached.
func (h *DrinkHandler) HandleLogDrink(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	var req drinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AmountML <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_ml must be positive"})
		return
	}

	now := h.clk.Now().In(h.loc)

	settings, err := h.settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsNotFound) {
			slog.ErrorContext(ctx, "failed to load settings",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			return
		}
		settings = &domain.ReminderSettings{
			Window:          domain.NewWindow(h.defaults.StartHour, h.defaults.EndHour),
			IntervalMinutes: domain.Interval(h.defaults.IntervalMinutes),
			SoundName:       h.defaults.SoundName,
			DailyGoalML:     h.defaults.DailyGoalML,
		}
	}

	settings.LastDrinkAt = &now
	if err := h.settingsRepo.SaveSettings(ctx, userID, settings); err != nil {
		slog.ErrorContext(ctx, "failed to save last drink time",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record drink"})
		return
	}

	total, err := h.settingsRepo.AddIntake(ctx, userID, domain.DayKey(now), req.AmountML)
	if err != nil {
		slog.ErrorContext(ctx, "failed to record intake",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record drink"})
		return
	}

	goalMet := settings.DailyGoalML > 0 && total >= settings.DailyGoalML
	passID := uuid.NewString()

	var plan *domain.Plan
	if goalMet {
		spanCtx, span := tracing.StartSchedulePassSpan(ctx, "schedule_tomorrow", now)
		plan = h.scheduler.ScheduleForTomorrow(spanCtx, *settings)
		tracing.RecordSchedulePassResult(span, len(plan.Today), len(plan.Tomorrow), nil)
		span.End()
	} else {
		spanCtx, span := tracing.StartSchedulePassSpan(ctx, "schedule_today_and_tomorrow", now)
		plan = h.scheduler.ScheduleForTodayAndTomorrow(spanCtx, *settings)
		tracing.RecordSchedulePassResult(span, len(plan.Today), len(plan.Tomorrow), nil)
		span.End()
	}

	slog.InfoContext(ctx, "drink logged",
		slog.String("user_id", userID),
		slog.Int("amount_ml", req.AmountML),
		slog.Int("total_ml", total),
		slog.Bool("goal_met", goalMet),
	)

	c.JSON(http.StatusOK, drinkResponse{
		PassID:        passID,
		TotalML:       total,
		DailyGoalML:   settings.DailyGoalML,
		GoalMet:       goalMet,
		TodayCount:    len(plan.Today),
		TomorrowCount: len(plan.Tomorrow),
	})
}

// HandleGetIntake reports the running intake total for the current local day.
func (h *DrinkHandler) HandleGetIntake(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	now := h.clk.Now().In(h.loc)
	dayKey := domain.DayKey(now)

	total, err := h.settingsRepo.IntakeForDay(ctx, userID, dayKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load intake",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load intake"})
		return
	}

	goal := h.defaults.DailyGoalML
	if settings, err := h.settingsRepo.GetSettings(ctx, userID); err == nil {
		goal = settings.DailyGoalML
	} else if !errors.Is(err, domain.ErrSettingsNotFound) {
		slog.ErrorContext(ctx, "failed to load settings",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, intakeResponse{
		Day:         dayKey,
		TotalML:     total,
		DailyGoalML: goal,
		GoalMet:     goal > 0 && total >= goal,
	})
}
