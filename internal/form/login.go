package form

// LoginForm はログインフォームの入力値と検証結果を保持します。
// ログイン時は必須入力のみを検証します。
type LoginForm struct {
	Username string
	Password string
	Errors   []ValidationError
}

// Validate は両フィールドの必須入力を検証します。
func (f *LoginForm) Validate() bool {
	f.Errors = nil

	if msg, ok := firstViolation(f.Username, []rule{requiredRule("ユーザ名")}); !ok {
		f.Errors = append(f.Errors, ValidationError{Field: "username", Message: msg})
	}
	if msg, ok := firstViolation(f.Password, []rule{requiredRule("パスワード")}); !ok {
		f.Errors = append(f.Errors, ValidationError{Field: "password", Message: msg})
	}

	return len(f.Errors) == 0
}

// ErrorFor はフィールドに対する最初のエラーメッセージを返します。
func (f *LoginForm) ErrorFor(field string) string {
	for _, e := range f.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
