package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sipwell/reminder-scheduling/loadtest/internal/stub"
)

// pushstub is a stand-in push gateway for load tests: it accepts scheduled
// notification tasks, tracks them in memory, and exposes reset/inspect
// endpoints so a test run can assert on submitted plans.
func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	storage := stub.NewTaskStorage()
	handler := stub.NewHandler(storage)

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/tasks", handler.HandleCreateTask)
	r.POST("/tasks/:queue", handler.HandleCreateTask)
	r.DELETE("/tasks/:queue", handler.HandleDeleteTask)
	r.DELETE("/tasks/:queue/:name", handler.HandleDeleteTask)
	r.POST("/badge/reset", handler.HandleResetBadge)
	r.POST("/permission", handler.HandlePermission)
	r.PUT("/permission", handler.HandleSetPermission)

	r.GET("/tasks/list", handler.HandleListTasks)
	r.GET("/state", handler.HandleState)
	r.POST("/reset", handler.HandleReset)

	slog.Info("starting push gateway stub", slog.String("port", port))

	if err := r.Run(":" + port); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
