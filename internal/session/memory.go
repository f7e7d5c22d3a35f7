package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore はインメモリのセッションストアです。
// ローカル開発とテストでRedis実装の代わりに使用します。
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore は空のインメモリストアを作成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Get はセッションレコードを取得します。期限切れのレコードは削除して未発見扱いにします。
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[sessionID]
	if !ok {
		return nil, nil
	}
	if !record.ExpiresAt.IsZero() && time.Now().After(record.ExpiresAt) {
		delete(s.records, sessionID)
		return nil, nil
	}
	return &record, nil
}

// Put はセッションレコードを保存します。
func (s *MemoryStore) Put(ctx context.Context, sessionID string, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[sessionID] = *record
	return nil
}

// Delete はセッションレコードを削除します。存在しない場合は何もしません。
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, sessionID)
	return nil
}
