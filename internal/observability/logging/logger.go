package logging

import (
	"log/slog"
	"os"
)

type ServiceInfo struct {
	Name    string
	Version string
}

// NewLogger builds the service-wide slog logger: JSON to stdout with the
// service identity attached to every record.
func NewLogger(level slog.Level, info ServiceInfo) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With(
		slog.String("service", info.Name),
		slog.String("version", info.Version),
	)
}
