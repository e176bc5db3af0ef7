//go:build !gcloud

package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

// PushSink delivers reminders through an HTTP push gateway: one-shot
// scheduled tasks created per reminder, deleted individually on ClearAll.
// The gateway's task names are tracked in the PendingStore between passes.
type PushSink struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
	pending    PendingStore
}

func NewPushSink(baseURL, queueName string, maxRetries int, pending PendingStore) *PushSink {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &PushSink{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
		pending:    pending,
	}
}

type gatewayTaskRequest struct {
	Task gatewayTask `json:"task"`
}

type gatewayTask struct {
	Notification gatewayNotification `json:"notification"`
	ScheduleTime string              `json:"scheduleTime,omitempty"`
}

type gatewayNotification struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound,omitempty"`
	Badge int    `json:"badge"`
}

type gatewayTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

type gatewayPermissionResponse struct {
	Granted bool `json:"granted"`
}

func (s *PushSink) Submit(ctx context.Context, req domain.ReminderRequest) error {
	gatewayReq := gatewayTaskRequest{
		Task: gatewayTask{
			Notification: gatewayNotification{
				ID:    req.ID,
				Title: req.Title,
				Body:  req.Body,
				Sound: req.Sound,
				Badge: req.Badge,
			},
		},
	}

	if !req.FireAt.IsZero() {
		gatewayReq.Task.ScheduleTime = req.FireAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(gatewayReq)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	taskURL := s.tasksURL()

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

		resp, err := s.doSubmit(ctx, taskURL, reqBody, req.ID)
		if err == nil {
			if err := s.pending.SavePending(ctx, req.ID, resp.Name); err != nil {
				slog.Warn("failed to record pending reminder",
					slog.String("reminder_id", req.ID),
					slog.String("task_name", resp.Name),
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

func (s *PushSink) doSubmit(ctx context.Context, taskURL string, reqBody []byte, reminderID string) (*gatewayTaskResponse, error) {
	slog.Debug("submitting reminder to push gateway",
		slog.String("url", taskURL),
		slog.String("reminder_id", reminderID),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, taskURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		slog.Warn("failed to send request to push gateway",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("unexpected status code from push gateway",
			slog.String("reminder_id", reminderID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var gatewayResp gatewayTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&gatewayResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Debug("reminder registered to push gateway",
		slog.String("task_name", gatewayResp.Name),
		slog.String("reminder_id", reminderID),
	)

	return &gatewayResp, nil
}

func (s *PushSink) ClearAll(ctx context.Context) error {
	pending, err := s.pending.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending reminders: %w", err)
	}

	for reminderID, taskName := range pending {
		if err := s.deleteTask(ctx, taskName); err != nil {
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

func (s *PushSink) deleteTask(ctx context.Context, taskName string) error {
	deleteURL := fmt.Sprintf("%s/%s", s.tasksURL(), url.PathEscape(taskName))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// A task the gateway no longer knows about already fired or was purged.
	if resp.StatusCode == http.StatusNotFound {
		slog.Debug("task not found on push gateway (may have fired)",
			slog.String("task_name", taskName),
		)
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (s *PushSink) ResetBadge(ctx context.Context) error {
	resetURL := fmt.Sprintf("%s/badge/reset", s.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, resetURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (s *PushSink) RequestPermission(ctx context.Context) (bool, error) {
	permissionURL := fmt.Sprintf("%s/permission", s.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, permissionURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var permResp gatewayPermissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&permResp); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return permResp.Granted, nil
}

func (s *PushSink) tasksURL() string {
	if s.queueName != "" && s.queueName != "default" {
		return fmt.Sprintf("%s/tasks/%s", s.baseURL, s.queueName)
	}
	return fmt.Sprintf("%s/tasks", s.baseURL)
}
