package stub

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// TaskStorage keeps the gateway-visible state of a test run: scheduled tasks
// by name, the last badge value seen, and the permission flag the stub
// reports back to the scheduling service.
type TaskStorage struct {
	mu          sync.RWMutex
	tasks       map[string]*TaskRecord
	counter     int
	badge       int
	badgeResets int
	granted     bool
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks:   make(map[string]*TaskRecord),
		granted: true,
	}
}

func (s *TaskStorage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]*TaskRecord)
	s.counter = 0
	s.badge = 0
	s.badgeResets = 0
	s.granted = true
}

func (s *TaskStorage) AddTask(queue string, payload TaskPayload) *TaskRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	now := time.Now().UTC()

	scheduleTime := now
	if payload.ScheduleTime != "" {
		if parsed, err := time.Parse(time.RFC3339, payload.ScheduleTime); err == nil {
			scheduleTime = parsed
		}
	}

	record := &TaskRecord{
		Name:         fmt.Sprintf("task-%06d", s.counter),
		Queue:        queue,
		ReminderID:   payload.Notification.ID,
		Title:        payload.Notification.Title,
		Body:         payload.Notification.Body,
		Sound:        payload.Notification.Sound,
		Badge:        payload.Notification.Badge,
		ScheduleTime: scheduleTime,
		CreatedAt:    now,
	}
	s.tasks[record.Name] = record

	if payload.Notification.Badge > s.badge {
		s.badge = payload.Notification.Badge
	}

	return record
}

func (s *TaskStorage) DeleteTask(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[name]; !ok {
		return false
	}
	delete(s.tasks, name)
	return true
}

func (s *TaskStorage) ListTasks() []TaskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]TaskRecord, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, *t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Name < tasks[j].Name
	})
	return tasks
}

func (s *TaskStorage) ResetBadge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badge = 0
	s.badgeResets++
}

func (s *TaskStorage) SetPermission(granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = granted
}

func (s *TaskStorage) Permission() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.granted
}

func (s *TaskStorage) State() StateResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StateResponse{
		TaskCount:   len(s.tasks),
		Badge:       s.badge,
		BadgeResets: s.badgeResets,
		Granted:     s.granted,
	}
}
