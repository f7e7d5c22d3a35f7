// Package validator は入力値検証のための述語関数を提供します。
// 状態を持たない純粋関数のみで構成されます。
package validator

import (
	"regexp"
	"unicode/utf8"
)

// 半角英数字・ハイフン・アンダースコアのみ（空文字は不一致）
var alphaNumericPattern = regexp.MustCompile(`^[0-9a-zA-Z-_]+$`)

// IsValidMinLength は文字数が length 以上であるかを判定します。
// 文字数はバイト長ではなくコードポイント数で数えます。
func IsValidMinLength(value string, length int) bool {
	return utf8.RuneCountInString(value) >= length
}

// IsValidMaxLength は文字数が length 以下であるかを判定します。
func IsValidMaxLength(value string, length int) bool {
	return utf8.RuneCountInString(value) <= length
}

// IsValidAlphaNumeric は半角英数字・ハイフン・アンダースコアのみで
// 構成される非空文字列であるかを判定します。
func IsValidAlphaNumeric(value string) bool {
	return alphaNumericPattern.MatchString(value)
}
