package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/custom-auth/internal/user"
)

// ユーザ登録フォームの文字数制限
const (
	UsernameMinLength = 5
	UsernameMaxLength = 32
	PasswordMinLength = 10
	PasswordMaxLength = 64
)

// MsgUsernameTaken はユーザ名重複時のメッセージです。
// 登録前チェックとストアのユニーク制約違反の双方で同じ文言を返します。
const MsgUsernameTaken = "このユーザ名は既に使用されています。"

// SignUpForm はユーザ登録フォームの入力値と検証結果を保持します。
type SignUpForm struct {
	Username string
	Password string
	Errors   []ValidationError
}

func usernameRules() []rule {
	return []rule{
		requiredRule("ユーザ名"),
		alphaNumericRule("ユーザ名"),
		minLengthRule("ユーザ名", UsernameMinLength),
		maxLengthRule("ユーザ名", UsernameMaxLength),
	}
}

func passwordRules() []rule {
	return []rule{
		requiredRule("パスワード"),
		alphaNumericRule("パスワード"),
		minLengthRule("パスワード", PasswordMinLength),
		maxLengthRule("パスワード", PasswordMaxLength),
	}
}

// Validate は各フィールドを独立に検証します。
// ユーザ名は文字種→最小文字数→最大文字数→重複の順で評価し、最初の違反で打ち切ります。
// 重複チェックはストアへの読み取りのみで、登録の正当性はストアのユニーク制約が保証します。
func (f *SignUpForm) Validate(ctx context.Context, store user.Store) (bool, error) {
	f.Errors = nil

	if msg, ok := firstViolation(f.Username, usernameRules()); !ok {
		f.AddError("username", msg)
	} else {
		taken, err := usernameTaken(ctx, store, f.Username)
		if err != nil {
			return false, fmt.Errorf("username lookup error: %w", err)
		}
		if taken {
			f.AddError("username", MsgUsernameTaken)
		}
	}

	if msg, ok := firstViolation(f.Password, passwordRules()); !ok {
		f.AddError("password", msg)
	}

	return len(f.Errors) == 0, nil
}

// AddError はフィールドに対するエラーを追加します。
func (f *SignUpForm) AddError(field, message string) {
	f.Errors = append(f.Errors, ValidationError{Field: field, Message: message})
}

// ErrorFor はフィールドに対する最初のエラーメッセージを返します。
// エラーが無い場合は空文字を返します。
func (f *SignUpForm) ErrorFor(field string) string {
	for _, e := range f.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func usernameTaken(ctx context.Context, store user.Store, username string) (bool, error) {
	_, err := store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
