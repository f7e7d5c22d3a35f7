package form

import (
	"context"
	"strings"
	"testing"

	"github.com/yourusername/custom-auth/internal/user"
)

func seededStore(t *testing.T) *user.MemoryStore {
	t.Helper()
	store := user.NewMemoryStore()
	if _, err := store.Create(context.Background(), "a-pompom0107", "digest", true); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return store
}

func TestSignUpFormValidUsernames(t *testing.T) {
	cases := []struct {
		name     string
		username string
	}{
		{"valid username", "a-pompom105a"},
		{"equal to min length", "12345"},
		{"equal to max length", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &SignUpForm{Username: tc.username, Password: "valid_password"}
			ok, err := f.Validate(context.Background(), seededStore(t))
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if !ok {
				t.Fatalf("expected valid, got errors: %+v", f.Errors)
			}
		})
	}
}

func TestSignUpFormInvalidUsernames(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantMsg  string
	}{
		{"invalid character", "a-pompom 105a", "ユーザ名は半角英数字・ハイフン・アンダースコアで入力してください。"},
		{"less than min length", "1234", "ユーザ名は5文字以上で入力してください。"},
		{"more than max length", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefg", "ユーザ名は32文字以内で入力してください。"},
		{"duplicate username", "a-pompom0107", MsgUsernameTaken},
		{"empty username", "", "ユーザ名を入力してください。"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &SignUpForm{Username: tc.username, Password: "valid_password"}
			ok, err := f.Validate(context.Background(), seededStore(t))
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if ok {
				t.Fatal("expected validation failure")
			}
			if got := f.ErrorFor("username"); got != tc.wantMsg {
				t.Fatalf("ErrorFor(username) = %q, want %q", got, tc.wantMsg)
			}
			// パスワード側は妥当なのでエラーは付かない
			if got := f.ErrorFor("password"); got != "" {
				t.Fatalf("unexpected password error: %q", got)
			}
		})
	}
}

func TestSignUpFormInvalidPasswords(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"invalid character type", "invalid password", "パスワードは半角英数字・ハイフン・アンダースコアで入力してください。"},
		{"less than min length", "min", "パスワードは10文字以上で入力してください。"},
		{"more than max length", strings.Repeat("a", 65), "パスワードは64文字以内で入力してください。"},
		{"empty password", "", "パスワードを入力してください。"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &SignUpForm{Username: "valid_username", Password: tc.password}
			ok, err := f.Validate(context.Background(), seededStore(t))
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if ok {
				t.Fatal("expected validation failure")
			}
			if got := f.ErrorFor("password"); got != tc.wantMsg {
				t.Fatalf("ErrorFor(password) = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestSignUpFormValidPasswordBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		password string
	}{
		{"alphanumeric with hyphen and underscore", "ABCDEFGHIJ0123456789-_"},
		{"equal to min length", "0123456789"},
		{"equal to max length", strings.Repeat("a", 64)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &SignUpForm{Username: "valid_username", Password: tc.password}
			ok, err := f.Validate(context.Background(), seededStore(t))
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if !ok {
				t.Fatalf("expected valid, got errors: %+v", f.Errors)
			}
		})
	}
}

func TestSignUpFormEvaluatesBothFields(t *testing.T) {
	// フィールド間は独立に評価され、双方のエラーが揃う
	f := &SignUpForm{Username: "1234", Password: "min"}
	ok, err := f.Validate(context.Background(), seededStore(t))
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if ok {
		t.Fatal("expected validation failure")
	}
	if len(f.Errors) != 2 {
		t.Fatalf("expected one error per field, got %+v", f.Errors)
	}
	if f.ErrorFor("username") == "" || f.ErrorFor("password") == "" {
		t.Fatalf("expected errors on both fields: %+v", f.Errors)
	}
}

func TestLoginFormValidate(t *testing.T) {
	f := &LoginForm{Username: "a-pompom0107", Password: "strong_password1234"}
	if !f.Validate() {
		t.Fatalf("expected valid, got errors: %+v", f.Errors)
	}

	empty := &LoginForm{}
	if empty.Validate() {
		t.Fatal("expected validation failure for empty form")
	}
	if empty.ErrorFor("username") != "ユーザ名を入力してください。" {
		t.Fatalf("unexpected username error: %q", empty.ErrorFor("username"))
	}
	if empty.ErrorFor("password") != "パスワードを入力してください。" {
		t.Fatalf("unexpected password error: %q", empty.ErrorFor("password"))
	}
}
