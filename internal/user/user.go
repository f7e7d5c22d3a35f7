// Package user は認証用ユーザのモデルと永続化層を提供します。
package user

// User は認証用ユーザを表します。
type User struct {
	ID           int64  // ストアが採番する一意なID
	Username     string // ユーザ名 ユニーク
	PasswordHash string // bcryptでハッシュ化されたパスワード 平文は保持しない
	IsAdmin      bool   // 管理者か
}
