//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/sipwell/reminder-scheduling/internal/config"
	"github.com/sipwell/reminder-scheduling/internal/infra/sink"
)

func initSink(_ context.Context, cfg *config.Config, pending sink.PendingStore) (sink.NotificationSink, func() error, error) {
	if cfg.Push.GatewayURL == "" {
		slog.Warn("PUSH_GATEWAY_URL not set, using in-memory notification sink")
		return sink.NewMemorySink(), nil, nil
	}

	slog.Info("using push gateway notification sink",
		slog.String("gateway_url", cfg.Push.GatewayURL),
		slog.String("queue_name", cfg.Push.QueueName),
	)
	return sink.NewPushSink(cfg.Push.GatewayURL, cfg.Push.QueueName, cfg.Push.MaxRetries, pending), nil, nil
}
