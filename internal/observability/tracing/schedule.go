package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const scheduleTracerName = "github.com/sipwell/reminder-scheduling/internal/service/schedule"

func ScheduleTracer() trace.Tracer {
	return otel.Tracer(scheduleTracerName)
}

func StartSchedulePassSpan(ctx context.Context, operation string, now time.Time) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule."+operation,
		trace.WithAttributes(
			attribute.String("pass.now", now.Format(time.RFC3339)),
		),
	)
}

func StartSinkSubmitSpan(ctx context.Context, reminderID string, fireAt time.Time) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.sink_submit",
		trace.WithAttributes(
			attribute.String("reminder_id", reminderID),
			attribute.String("fire_at", fireAt.Format(time.RFC3339)),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordSinkSubmitResult(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func RecordSchedulePassResult(span trace.Span, todayCount, tomorrowCount int, err error) {
	span.SetAttributes(
		attribute.Int("plan.today_count", todayCount),
		attribute.Int("plan.tomorrow_count", tomorrowCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
