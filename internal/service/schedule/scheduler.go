package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmhodges/clock"

	"github.com/sipwell/reminder-scheduling/internal/domain"
	"github.com/sipwell/reminder-scheduling/internal/infra/sink"
	"github.com/sipwell/reminder-scheduling/internal/infra/sound"
	"github.com/sipwell/reminder-scheduling/internal/observability/metrics"
	"github.com/sipwell/reminder-scheduling/internal/observability/tracing"
)

const (
	reminderTitle = "Time to hydrate"
	reminderBody  = "Have a glass of water to stay on track with today's goal."

	opScheduleBoth     = "schedule_today_and_tomorrow"
	opScheduleTomorrow = "schedule_tomorrow"
	opCancelAll        = "cancel_all"
)

// Scheduler turns reminder settings into a concrete plan of future fire
// times and materializes it on the notification sink. Each pass clears the
// sink before submitting, so at most one plan is active; callers must
// serialize passes (latest wins). The clock and location are injected, never
// read from ambient state.
type Scheduler struct {
	sink            sink.NotificationSink
	clk             clock.Clock
	loc             *time.Location
	sounds          *sound.Resolver
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewScheduler(
	notificationSink sink.NotificationSink,
	clk clock.Clock,
	loc *time.Location,
	sounds *sound.Resolver,
	scheduleMetrics *metrics.ScheduleMetrics,
) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		sink:            notificationSink,
		clk:             clk,
		loc:             loc,
		sounds:          sounds,
		scheduleMetrics: scheduleMetrics,
	}
}

// ScheduleForTodayAndTomorrow replaces all pending reminders with a fresh
// plan covering the rest of today and the whole of tomorrow. An invalid
// (negative) interval leaves the sink cleared and returns an empty plan;
// it is not an error.
func (s *Scheduler) ScheduleForTodayAndTomorrow(ctx context.Context, settings domain.ReminderSettings) *domain.Plan {
	s.reset(ctx)

	plan := domain.NewPlan()
	if !settings.IntervalMinutes.IsValid() {
		slog.WarnContext(ctx, "negative reminder interval, nothing to schedule",
			slog.Int("interval_minutes", settings.IntervalMinutes.Minutes()),
		)
		s.recordPass(ctx, opScheduleBoth, plan)
		return plan
	}

	now := s.clk.Now().In(s.loc)
	plan = s.computePlan(now, settings)

	badge := s.submitDay(ctx, domain.TodayIDPrefix, plan.Today, settings.SoundName, 0)
	s.submitDay(ctx, domain.TomorrowIDPrefix, plan.Tomorrow, settings.SoundName, badge)

	slog.InfoContext(ctx, "reminder plan scheduled",
		slog.Time("now", now),
		slog.Int("today_count", len(plan.Today)),
		slog.Int("tomorrow_count", len(plan.Tomorrow)),
	)
	s.recordPass(ctx, opScheduleBoth, plan)
	return plan
}

// ScheduleForTomorrow replaces all pending reminders with tomorrow's natural
// slot sequence only. Used once today's goal is met: no further reminders
// today.
func (s *Scheduler) ScheduleForTomorrow(ctx context.Context, settings domain.ReminderSettings) *domain.Plan {
	s.reset(ctx)

	plan := domain.NewPlan()
	if !settings.IntervalMinutes.IsValid() {
		slog.WarnContext(ctx, "negative reminder interval, nothing to schedule",
			slog.Int("interval_minutes", settings.IntervalMinutes.Minutes()),
		)
		s.recordPass(ctx, opScheduleTomorrow, plan)
		return plan
	}

	now := s.clk.Now().In(s.loc)
	plan.Tomorrow = DailySlots(nextDay(now), settings.Window, settings.IntervalMinutes)

	s.submitDay(ctx, domain.TomorrowIDPrefix, plan.Tomorrow, settings.SoundName, 0)

	slog.InfoContext(ctx, "reminder plan scheduled for tomorrow only",
		slog.Time("now", now),
		slog.Int("tomorrow_count", len(plan.Tomorrow)),
	)
	s.recordPass(ctx, opScheduleTomorrow, plan)
	return plan
}

// CancelAll clears every pending reminder and resets the badge.
func (s *Scheduler) CancelAll(ctx context.Context) {
	s.reset(ctx)
	slog.InfoContext(ctx, "all reminders cancelled")
	s.recordPass(ctx, opCancelAll, domain.NewPlan())
}

// computePlan is the pure part of a pass: slot and anchor math only, no sink
// effects.
func (s *Scheduler) computePlan(now time.Time, settings domain.ReminderSettings) *domain.Plan {
	window := settings.Window
	interval := settings.IntervalMinutes
	tomorrow := nextDay(now)

	plan := domain.NewPlan()

	var anchor time.Time
	hasAnchor := false
	if settings.LastDrinkAt != nil {
		anchor, hasAnchor = FirstReminderFromLastDrink(settings.LastDrinkAt.In(s.loc), interval, window, now)
	}

	if interval.IsOnceDaily() {
		if hasAnchor {
			// The anchor tracks the drink's time-of-day across days.
			switch {
			case sameDay(anchor, now) && anchor.After(now):
				plan.Today = append(plan.Today, anchor)
				plan.Tomorrow = DailySlots(tomorrow, window, interval)
			case sameDay(anchor, tomorrow):
				plan.Tomorrow = append(plan.Tomorrow, anchor)
			default:
				plan.Tomorrow = DailySlots(tomorrow, window, interval)
			}
			return plan
		}
		plan.Today = filterAfter(DailySlots(now, window, interval), now)
		plan.Tomorrow = DailySlots(tomorrow, window, interval)
		return plan
	}

	if hasAnchor && sameDay(anchor, now) && anchor.After(now) {
		// Continue the progression from the anchor, not the window start.
		plan.Today = slotsFrom(anchor, window.EndOn(now), interval)
	} else {
		plan.Today = filterAfter(DailySlots(now, window, interval), now)
	}
	plan.Tomorrow = DailySlots(tomorrow, window, interval)
	return plan
}

// reset clears the sink and its badge. Failures are logged and swallowed:
// sink calls are best-effort fire-and-forget.
func (s *Scheduler) reset(ctx context.Context) {
	if err := s.sink.ClearAll(ctx); err != nil {
		slog.WarnContext(ctx, "failed to clear pending reminders",
			slog.String("error", err.Error()),
		)
	}
	if err := s.sink.ResetBadge(ctx); err != nil {
		slog.WarnContext(ctx, "failed to reset badge",
			slog.String("error", err.Error()),
		)
	}
}

// submitDay submits one day bucket under sequential identifiers, stamping a
// badge counter that keeps increasing across buckets within the pass.
func (s *Scheduler) submitDay(ctx context.Context, prefix string, times []time.Time, soundName string, badge int) int {
	for i, fireAt := range times {
		badge++
		req := domain.ReminderRequest{
			ID:     domain.ReminderID(prefix, i),
			FireAt: fireAt,
			Title:  reminderTitle,
			Body:   reminderBody,
			Sound:  s.sounds.Resolve(soundName),
			Badge:  badge,
		}
		submitCtx, span := tracing.StartSinkSubmitSpan(ctx, req.ID, req.FireAt)
		err := s.sink.Submit(submitCtx, req)
		tracing.RecordSinkSubmitResult(span, err)
		span.End()
		if err != nil {
			slog.WarnContext(ctx, "failed to submit reminder",
				slog.String("reminder_id", req.ID),
				slog.Time("fire_at", req.FireAt),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordSubmitted(ctx, prefix, len(times))
	}
	return badge
}

func (s *Scheduler) recordPass(ctx context.Context, operation string, plan *domain.Plan) {
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordPass(ctx, operation, plan.Total())
	}
}
