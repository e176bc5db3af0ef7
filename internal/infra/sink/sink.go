package sink

import (
	"context"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

//go:generate mockgen -source=sink.go -destination=mock.go -package=sink

// NotificationSink is the delivery abstraction the scheduler submits plans
// to. ClearAll removes every previously scheduled reminder and must be
// idempotent. Submit schedules a one-shot reminder; the scheduler clears
// before resubmitting rather than relying on per-id replace semantics.
// RequestPermission is a one-time authorization gate called at startup;
// scheduling proceeds regardless of the result.
type NotificationSink interface {
	ClearAll(ctx context.Context) error
	Submit(ctx context.Context, req domain.ReminderRequest) error
	ResetBadge(ctx context.Context) error
	RequestPermission(ctx context.Context) (bool, error)
}

// PendingStore tracks which reminder ids are currently scheduled on a
// remote delivery gateway, keyed to the gateway's task names, so ClearAll
// can delete them individually.
type PendingStore interface {
	SavePending(ctx context.Context, reminderID, taskName string) error
	ListPending(ctx context.Context) (map[string]string, error)
	ClearPending(ctx context.Context) error
}
