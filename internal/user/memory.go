package user

import (
	"context"
	"sync"
)

// MemoryStore はインメモリのユーザストアです。
// ローカル開発とテストでPostgres実装の代わりに使用します。
type MemoryStore struct {
	mu     sync.Mutex
	users  map[int64]User
	byName map[string]int64
	nextID int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore は空のインメモリストアを作成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[int64]User),
		byName: make(map[string]int64),
		nextID: 1,
	}
}

// FindByUsername はユーザ名の完全一致でユーザを検索します。
func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.users[id]
	return &u, nil
}

// FindByID はIDでユーザを検索します。
func (s *MemoryStore) FindByID(ctx context.Context, id int64) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// Create はユーザを登録します。ユニーク制約はロック内で判定します。
func (s *MemoryStore) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return nil, ErrUsernameTaken
	}

	u := User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	s.nextID++
	s.users[u.ID] = u
	s.byName[u.Username] = u.ID
	return &u, nil
}
