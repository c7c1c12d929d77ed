package opener

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQuotaStore counts daily opener usage in Redis. Keys are scoped by
// UTC date and expire on their own, so there is no reset job.
type RedisQuotaStore struct {
	client *redis.Client
}

func NewRedisQuotaStore(client *redis.Client) *RedisQuotaStore {
	return &RedisQuotaStore{client: client}
}

func (s *RedisQuotaStore) IncrementDaily(ctx context.Context, userID string) (int64, error) {
	now := time.Now().UTC()
	key := fmt.Sprintf("openers:%s:%s", userID, now.Format("2006-01-02"))

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// First use today: expire the key at the end of the UTC day.
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		s.client.ExpireAt(ctx, key, midnight)
	}
	return count, nil
}
