package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/sipwell/reminder-scheduling/internal/infra/sink"
)

const pendingKey = "hydration:pending"

// pendingStore keeps the reminder-id → gateway-task-name mapping for the
// currently submitted plan so ClearAll can delete each task individually.
type pendingStore struct {
	client *redis.Client
}

func NewPendingStore(client *redis.Client) sink.PendingStore {
	return &pendingStore{
		client: client,
	}
}

func (s *pendingStore) SavePending(ctx context.Context, reminderID, taskName string) error {
	return s.client.HSet(ctx, pendingKey, reminderID, taskName).Err()
}

func (s *pendingStore) ListPending(ctx context.Context) (map[string]string, error) {
	return s.client.HGetAll(ctx, pendingKey).Result()
}

func (s *pendingStore) ClearPending(ctx context.Context) error {
	return s.client.Del(ctx, pendingKey).Err()
}
