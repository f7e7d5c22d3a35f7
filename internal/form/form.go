// Package form はログイン・ユーザ登録フォームの入力値と検証処理を提供します。
// 検証ルールはフィールドごとに順序付きで評価し、最初の違反で打ち切ります。
package form

import (
	"fmt"

	"github.com/yourusername/custom-auth/internal/validator"
)

// ValidationError はフィールド単位の入力検証エラーを表します。
type ValidationError struct {
	Field   string
	Message string
}

// rule は単一フィールドに対する検証ルールです。
type rule struct {
	check   func(value string) bool
	message string
}

// firstViolation はルールを先頭から順に評価し、最初に違反したルールのメッセージを返します。
func firstViolation(value string, rules []rule) (string, bool) {
	for _, r := range rules {
		if !r.check(value) {
			return r.message, false
		}
	}
	return "", true
}

func requiredRule(label string) rule {
	return rule{
		check:   func(value string) bool { return value != "" },
		message: fmt.Sprintf("%sを入力してください。", label),
	}
}

func alphaNumericRule(label string) rule {
	return rule{
		check:   validator.IsValidAlphaNumeric,
		message: fmt.Sprintf("%sは半角英数字・ハイフン・アンダースコアで入力してください。", label),
	}
}

func minLengthRule(label string, length int) rule {
	return rule{
		check:   func(value string) bool { return validator.IsValidMinLength(value, length) },
		message: fmt.Sprintf("%sは%d文字以上で入力してください。", label, length),
	}
}

func maxLengthRule(label string, length int) rule {
	return rule{
		check:   func(value string) bool { return validator.IsValidMaxLength(value, length) },
		message: fmt.Sprintf("%sは%d文字以内で入力してください。", label, length),
	}
}
