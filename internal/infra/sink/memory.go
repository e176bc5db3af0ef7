package sink

import (
	"context"
	"sync"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

// MemorySink is an in-process NotificationSink. It backs tests that assert
// on submitted plans and serves as the fallback delivery target when no
// push gateway is configured.
type MemorySink struct {
	mu      sync.Mutex
	pending []domain.ReminderRequest
	badge   int
	granted bool
}

func NewMemorySink() *MemorySink {
	return &MemorySink{
		pending: make([]domain.ReminderRequest, 0),
		granted: true,
	}
}

func (s *MemorySink) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = s.pending[:0]
	return nil
}

func (s *MemorySink) Submit(_ context.Context, req domain.ReminderRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, req)
	if req.Badge > s.badge {
		s.badge = req.Badge
	}
	return nil
}

func (s *MemorySink) ResetBadge(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badge = 0
	return nil
}

func (s *MemorySink) RequestPermission(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.granted, nil
}

// SetPermission controls what RequestPermission reports.
func (s *MemorySink) SetPermission(granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = granted
}

// Pending returns a copy of the currently scheduled reminders in submission
// order.
func (s *MemorySink) Pending() []domain.ReminderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ReminderRequest, len(s.pending))
	copy(out, s.pending)
	return out
}

// Badge returns the highest badge value seen since the last reset.
func (s *MemorySink) Badge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badge
}
