package stub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	storage *TaskStorage
}

func NewHandler(storage *TaskStorage) *Handler {
	return &Handler{storage: storage}
}

// POST /tasks and POST /tasks/:queue
func (h *Handler) HandleCreateTask(c *gin.Context) {
	queue := c.Param("queue")
	if queue == "" {
		queue = "default"
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Task.Notification.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "notification id is required"})
		return
	}

	record := h.storage.AddTask(queue, req.Task)

	slog.Debug("task created",
		slog.String("task_name", record.Name),
		slog.String("queue", queue),
		slog.String("reminder_id", record.ReminderID),
		slog.Int("badge", record.Badge),
	)

	c.JSON(http.StatusCreated, TaskResponse{
		Name:         record.Name,
		ScheduleTime: record.ScheduleTime.Format(time.RFC3339),
		CreateTime:   record.CreatedAt.Format(time.RFC3339),
	})
}

// DELETE /tasks/:queue and DELETE /tasks/:queue/:name
// The single-segment form addresses a task on the default queue, so the
// first path parameter is the task name when no second segment is present.
func (h *Handler) HandleDeleteTask(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		name = c.Param("queue")
	}

	if !h.storage.DeleteTask(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	slog.Debug("task deleted", slog.String("task_name", name))
	c.Status(http.StatusNoContent)
}

// GET /tasks/list
func (h *Handler) HandleListTasks(c *gin.Context) {
	tasks := h.storage.ListTasks()
	c.JSON(http.StatusOK, TasksResponse{
		Tasks: tasks,
		Count: len(tasks),
	})
}

// POST /badge/reset
func (h *Handler) HandleResetBadge(c *gin.Context) {
	h.storage.ResetBadge()
	slog.Debug("badge reset")
	c.Status(http.StatusNoContent)
}

// POST /permission
func (h *Handler) HandlePermission(c *gin.Context) {
	granted := h.storage.Permission()
	slog.Debug("permission requested", slog.Bool("granted", granted))
	c.JSON(http.StatusOK, PermissionResponse{Granted: granted})
}

// PUT /permission sets what the next permission request will report.
func (h *Handler) HandleSetPermission(c *gin.Context) {
	var req SetPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.SetPermission(req.Granted)

	slog.Info("permission updated", slog.Bool("granted", req.Granted))
	c.JSON(http.StatusOK, gin.H{"granted": req.Granted})
}

// POST /reset
func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.Reset()
	slog.Info("stub state reset")
	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

// GET /state
func (h *Handler) HandleState(c *gin.Context) {
	c.JSON(http.StatusOK, h.storage.State())
}
