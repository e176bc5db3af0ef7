//go:build gcloud

package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

// CloudTasksSink delivers reminders through Google Cloud Tasks: one task per
// reminder, scheduled at the fire time, targeting the push-delivery worker.
type CloudTasksSink struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
	pending    PendingStore
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksSink(ctx context.Context, cfg CloudTasksConfig, pending PendingStore) (*CloudTasksSink, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksSink{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
		pending:    pending,
	}, nil
}

type cloudTaskPayload struct {
	ID     string    `json:"id"`
	FireAt time.Time `json:"fire_at"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	Sound  string    `json:"sound,omitempty"`
	Badge  int       `json:"badge"`
}

func (s *CloudTasksSink) Submit(ctx context.Context, req domain.ReminderRequest) error {
	payload, err := json.Marshal(cloudTaskPayload{
		ID:     req.ID,
		FireAt: req.FireAt,
		Title:  req.Title,
		Body:   req.Body,
		Sound:  req.Sound,
		Badge:  req.Badge,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	// Task names must be unique even across deletions; Cloud Tasks rejects a
	// recently deleted name for about an hour.
	taskName := s.taskPath(fmt.Sprintf("%s-%s", req.ID, uuid.NewString()))

	cloudTask := &taskspb.Task{
		Name: taskName,
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        s.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}

	if !req.FireAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(req.FireAt)
	}

	createReq := &taskspb.CreateTaskRequest{
		Parent: s.queuePath(),
		Task:   cloudTask,
	}

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying reminder submission",
				slog.String("reminder_id", req.ID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		createdTask, err := s.client.CreateTask(ctx, createReq)
		if err == nil {
			slog.Debug("reminder registered to Cloud Tasks",
				slog.String("task_name", createdTask.Name),
				slog.String("reminder_id", req.ID),
			)
			if err := s.pending.SavePending(ctx, req.ID, createdTask.Name); err != nil {
				slog.Warn("failed to record pending reminder",
					slog.String("reminder_id", req.ID),
					slog.String("error", err.Error()),
				)
			}
			return nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for reminder submission",
		slog.String("reminder_id", req.ID),
		slog.Int("max_retries", s.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return fmt.Errorf("failed to submit reminder after %d retries: %w", s.maxRetries, lastErr)
}

func (s *CloudTasksSink) ClearAll(ctx context.Context) error {
	pending, err := s.pending.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending reminders: %w", err)
	}

	for reminderID, taskName := range pending {
		err := s.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{Name: taskName})
		if err != nil {
			if status.Code(err) == codes.NotFound {
				slog.Debug("task not found in Cloud Tasks (may have fired)",
					slog.String("task_name", taskName),
				)
				continue
			}
			slog.Warn("failed to delete scheduled reminder",
				slog.String("reminder_id", reminderID),
				slog.String("task_name", taskName),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.pending.ClearPending(ctx); err != nil {
		return fmt.Errorf("failed to clear pending reminders: %w", err)
	}

	slog.Debug("cleared scheduled reminders",
		slog.Int("count", len(pending)),
	)
	return nil
}

// ResetBadge pushes an immediate badge-zero notification through the worker;
// Cloud Tasks has no badge concept of its own.
func (s *CloudTasksSink) ResetBadge(ctx context.Context) error {
	payload, err := json.Marshal(cloudTaskPayload{ID: "badge_reset", Badge: 0})
	if err != nil {
		return fmt.Errorf("failed to marshal badge reset payload: %w", err)
	}

	_, err = s.client.CreateTask(ctx, &taskspb.CreateTaskRequest{
		Parent: s.queuePath(),
		Task: &taskspb.Task{
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        s.targetURL,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					Body: payload,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create badge reset task: %w", err)
	}
	return nil
}

// RequestPermission has no Cloud Tasks analogue; delivery permission is
// resolved on the device.
func (s *CloudTasksSink) RequestPermission(_ context.Context) (bool, error) {
	return true, nil
}

func (s *CloudTasksSink) Close() error {
	return s.client.Close()
}

func (s *CloudTasksSink) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		s.projectID, s.locationID, s.queueID)
}

func (s *CloudTasksSink) taskPath(reminderID string) string {
	return fmt.Sprintf("%s/tasks/%s", s.queuePath(), reminderID)
}
