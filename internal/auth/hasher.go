// Package auth は認証バックエンドとログイン・ユーザ登録のハンドラー群を提供します。
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword は平文パスワードからbcryptダイジェストを生成します。
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword は平文パスワードとダイジェストを照合します。
// 比較はbcryptに委ね、平文同士の比較は行いません。
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
