package respond

import (
	"regexp"
)

var (
	// Bearer トークン（JWT）パターン
	bearerTokenPattern = regexp.MustCompile(`Bearer [A-Za-z0-9\-_=]+\.[A-Za-z0-9\-_=]+\.?[A-Za-z0-9\-_.+/=]*`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)

	// key=value 形式のパスワード（libpq 形式の DSN）
	kvPasswordPattern = regexp.MustCompile(`password=\S+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "password=****")

	return msg
}
