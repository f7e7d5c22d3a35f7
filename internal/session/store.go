// Package session はオペークなセッションIDをキーとしたセッション管理を提供します。
// クッキーにはセッションIDのみを載せ、レコード本体はストア側で保持します。
package session

import (
	"context"
	"time"
)

// Record はセッションストアに保存される1セッション分の情報です。
type Record struct {
	UserID    int64     `json:"userId"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store はセッションレコードを保持するストアのインターフェースです。
// 見つからない場合は (nil, nil) を返します。
type Store interface {
	Get(ctx context.Context, sessionID string) (*Record, error)
	Put(ctx context.Context, sessionID string, record *Record) error
	Delete(ctx context.Context, sessionID string) error
}
