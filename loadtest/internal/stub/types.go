package stub

import "time"

type TaskRequest struct {
	Task TaskPayload `json:"task"`
}

type TaskPayload struct {
	Notification NotificationPayload `json:"notification"`
	ScheduleTime string              `json:"scheduleTime,omitempty"`
}

type NotificationPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound,omitempty"`
	Badge int    `json:"badge"`
}

type TaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

type TasksResponse struct {
	Tasks []TaskRecord `json:"tasks"`
	Count int          `json:"count"`
}

type TaskRecord struct {
	Name         string    `json:"name"`
	Queue        string    `json:"queue"`
	ReminderID   string    `json:"reminder_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Sound        string    `json:"sound,omitempty"`
	Badge        int       `json:"badge"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreatedAt    time.Time `json:"created_at"`
}

type PermissionResponse struct {
	Granted bool `json:"granted"`
}

type SetPermissionRequest struct {
	Granted bool `json:"granted"`
}

type StateResponse struct {
	TaskCount   int  `json:"task_count"`
	Badge       int  `json:"badge"`
	BadgeResets int  `json:"badge_resets"`
	Granted     bool `json:"granted"`
}
