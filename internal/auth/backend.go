package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/custom-auth/internal/user"
)

// ErrInvalidCredentials はユーザ名またはパスワードが正しくないことを示します。
// ユーザ不在とパスワード不一致は区別しません。
var ErrInvalidCredentials = errors.New("invalid credentials")

// Backend はユーザストアに対する認証処理を担います。
type Backend struct {
	store user.Store
}

// NewBackend は認証バックエンドを作成します。
func NewBackend(store user.Store) *Backend {
	return &Backend{store: store}
}

// Authenticate はユーザ名とパスワードを検証し、認証済みユーザを返します。
// ユーザが存在しない場合はハッシュ照合を行わず ErrInvalidCredentials を返します。
func (b *Backend) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := b.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("user lookup error: %w", err)
	}

	if !VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// UserByID はセッションに紐付いたユーザを取得します。
// 取得に失敗した場合は理由を問わずすべて未発見として扱います。
func (b *Backend) UserByID(ctx context.Context, id int64) (*user.User, bool) {
	u, err := b.store.FindByID(ctx, id)
	if err != nil {
		return nil, false
	}
	return u, true
}
