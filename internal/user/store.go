package user

import (
	"context"
	"errors"
)

// ErrNotFound は該当するユーザが存在しないことを示します。
var ErrNotFound = errors.New("user not found")

// ErrUsernameTaken はユーザ名のユニーク制約に違反したことを示します。
var ErrUsernameTaken = errors.New("username already taken")

// Store はユーザレコードの検索・登録を行うストアのインターフェースです。
// ユーザ名のユニーク制約は実装側が保証します。
type Store interface {
	// FindByUsername はユーザ名の完全一致でユーザを検索します。
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByID はIDでユーザを検索します。
	FindByID(ctx context.Context, id int64) (*User, error)
	// Create はユーザを登録し、採番済みのユーザを返します。
	// ユーザ名が既に存在する場合は ErrUsernameTaken を返します。
	Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*User, error)
}
