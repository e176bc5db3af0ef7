package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scheduleMeterName = "schedule.service"
)

type ScheduleMetrics struct {
	passesTotal        metric.Int64Counter
	remindersSubmitted metric.Int64Counter
	emptyPlans         metric.Int64Counter
	planSize           metric.Int64Histogram
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	passesTotal, err := meter.Int64Counter(
		"schedule_passes_total",
		metric.WithDescription("Total number of scheduling passes"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	remindersSubmitted, err := meter.Int64Counter(
		"schedule_reminders_submitted_total",
		metric.WithDescription("Total number of reminders submitted to the sink"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	emptyPlans, err := meter.Int64Counter(
		"schedule_empty_plans_total",
		metric.WithDescription("Scheduling passes that produced no reminders"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	planSize, err := meter.Int64Histogram(
		"schedule_plan_size",
		metric.WithDescription("Number of reminders per computed plan"),
		metric.WithUnit("{reminder}"),
		metric.WithExplicitBucketBoundaries(
			0, 1, 2, 5, 10, 20, 50, 100,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		passesTotal:        passesTotal,
		remindersSubmitted: remindersSubmitted,
		emptyPlans:         emptyPlans,
		planSize:           planSize,
	}, nil
}

func (m *ScheduleMetrics) RecordPass(ctx context.Context, operation string, planned int) {
	m.passesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
	m.planSize.Record(ctx, int64(planned), metric.WithAttributes(
		attribute.String("operation", operation),
	))
	if planned == 0 {
		m.emptyPlans.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
		))
	}
}

func (m *ScheduleMetrics) RecordSubmitted(ctx context.Context, day string, count int) {
	m.remindersSubmitted.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("day", day),
	))
}
