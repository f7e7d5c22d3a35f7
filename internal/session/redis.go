package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisStore はセッションレコードを Redis に保存します。
// 期限管理はRedisのTTLに委ねます。
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore は RedisStore を作成します。
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		ttl: ttl,
	}
}

// Get はセッションレコードを取得します。
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is required")
	}
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Put はセッションレコードを保存します（存在する場合は上書き）。
func (s *RedisStore) Put(ctx context.Context, sessionID string, record *Record) error {
	if record == nil {
		return fmt.Errorf("record is nil")
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err()
}

// Delete はセッションレコードを削除します。
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
