//go:build gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/sipwell/reminder-scheduling/internal/config"
	"github.com/sipwell/reminder-scheduling/internal/infra/sink"
)

func initSink(ctx context.Context, cfg *config.Config, pending sink.PendingStore) (sink.NotificationSink, func() error, error) {
	tasksSink, err := sink.NewCloudTasksSink(ctx, sink.CloudTasksConfig{
		ProjectID:  cfg.Push.GCloudProjectID,
		LocationID: cfg.Push.GCloudLocationID,
		QueueID:    cfg.Push.GCloudQueueID,
		TargetURL:  cfg.Push.GCloudTargetURL,
		MaxRetries: cfg.Push.MaxRetries,
	}, pending)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("using cloud tasks notification sink",
		slog.String("project_id", cfg.Push.GCloudProjectID),
		slog.String("location_id", cfg.Push.GCloudLocationID),
		slog.String("queue_id", cfg.Push.GCloudQueueID),
	)
	return tasksSink, tasksSink.Close, nil
}
