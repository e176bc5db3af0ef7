package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmhodges/clock"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/sipwell/reminder-scheduling/internal/config"
	"github.com/sipwell/reminder-scheduling/internal/handler"
	"github.com/sipwell/reminder-scheduling/internal/health"
	"github.com/sipwell/reminder-scheduling/internal/infra/repository"
	"github.com/sipwell/reminder-scheduling/internal/infra/sound"
	"github.com/sipwell/reminder-scheduling/internal/observability"
	"github.com/sipwell/reminder-scheduling/internal/observability/logging"
	"github.com/sipwell/reminder-scheduling/internal/observability/metrics"
	"github.com/sipwell/reminder-scheduling/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName(),
			Version: Version,
		},
		LogLevel: cfg.LogLevel,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		slog.Error("failed to load time zone", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	settingsRepo := repository.NewSettingsRepository(redisClient)
	pendingStore := repository.NewPendingStore(redisClient)

	notificationSink, cleanup, err := initSink(ctx, cfg, pendingStore)
	if err != nil {
		slog.Error("failed to initialize notification sink", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notification sink cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	// One-time authorization gate. A denial means the OS silently drops
	// reminders; scheduling proceeds regardless.
	granted, err := notificationSink.RequestPermission(ctx)
	if err != nil {
		slog.Warn("failed to request notification permission", slog.String("error", err.Error()))
	} else if !granted {
		slog.Warn("notification permission denied, reminders will not be delivered")
	}

	clk := clock.New()
	soundResolver := sound.NewResolver()
	scheduler := schedule.NewScheduler(notificationSink, clk, loc, soundResolver, scheduleMetrics)

	scheduleHandler := handler.NewScheduleHandler(scheduler, settingsRepo, cfg.Reminder, clk, loc)
	drinkHandler := handler.NewDrinkHandler(scheduler, settingsRepo, cfg.Reminder, clk, loc)
	settingsHandler := handler.NewSettingsHandler(scheduler, settingsRepo, cfg.Reminder, soundResolver, clk, loc)

	r := gin.New()
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/schedule", scheduleHandler.HandleSchedule)
		v1.POST("/schedule/tomorrow", scheduleHandler.HandleScheduleTomorrow)
		v1.DELETE("/reminders", scheduleHandler.HandleCancelAll)
		v1.POST("/drinks", drinkHandler.HandleLogDrink)
		v1.GET("/drinks/today", drinkHandler.HandleGetIntake)
		v1.GET("/settings", settingsHandler.HandleGetSettings)
		v1.PUT("/settings", settingsHandler.HandleUpdateSettings)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("time_zone", cfg.TimeZone),
			slog.Int("default_start_hour", cfg.Reminder.StartHour),
			slog.Int("default_end_hour", cfg.Reminder.EndHour),
			slog.Int("default_interval_minutes", cfg.Reminder.IntervalMinutes),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func serviceName() string {
	if name := os.Getenv("SERVICE_NAME"); name != "" {
		return name
	}
	return "reminder-scheduling"
}
