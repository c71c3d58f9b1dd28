package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Accounts come from the environment; the editor is optional.
type envAccount struct {
	role    string
	userKey string
	passKey string
}

// 照合順: admin → editor
var envAccounts = []envAccount{
	{role: RoleAdmin, userKey: "ADMIN_USER", passKey: "ADMIN_USER_PASSWORD"},
	{role: RoleEditor, userKey: "EDITOR_USER", passKey: "EDITOR_USER_PASSWORD"},
}

var (
	errPasswordTooShort = errors.New("password too short")
	errPasswordWeak     = errors.New("password is a common or derived-from-common value")
	errPasswordPattern  = errors.New("password is a digit run or keyboard row")
)

// builtinWeak is always rejected on top of the configured list.
var builtinWeak = []string{
	"admin", "editor", "password", "secret", "welcome", "letmein",
	"newsportal", "qwerty", "abc123", "monkey", "default", "root", "test",
	"123456", "12345678", "123456789", "1234567890",
}

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// PasswordPolicy is applied to configured account passwords at startup and
// to submitted passwords at login.
type PasswordPolicy struct {
	MinLength int
	Weak      []string
}

// NewPasswordPolicy merges the configured weak list with the built-in one.
func NewPasswordPolicy(minLength int, weak []string) PasswordPolicy {
	merged := slices.Clone(builtinWeak)
	for _, w := range weak {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && !slices.Contains(merged, w) {
			merged = append(merged, w)
		}
	}
	return PasswordPolicy{MinLength: minLength, Weak: merged}
}

// Check returns nil when pass satisfies the policy.
func (p PasswordPolicy) Check(pass string) error {
	if len(pass) < p.MinLength {
		return fmt.Errorf("%w: need at least %d characters", errPasswordTooShort, p.MinLength)
	}
	if isDigitRun(pass) || hasKeyboardRow(pass) {
		return errPasswordPattern
	}
	lower := strings.ToLower(pass)
	for _, w := range p.Weak {
		// "admin2024!" 程度の派生も弾くが、十分長ければ許可する
		if lower == w || (strings.HasPrefix(lower, w) && len(pass) < p.MinLength+5) {
			return errPasswordWeak
		}
	}
	return nil
}

// isDigitRun matches a repeated character or an all-digit ascending or
// descending sequence (wrapping 9→0).
func isDigitRun(s string) bool {
	if s == "" {
		return false
	}
	if strings.Count(s, s[:1]) == len(s) {
		return true
	}
	up, down := true, true
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
		if i == 0 {
			continue
		}
		d := (int(s[i]) - int(s[i-1]) + 10) % 10
		up = up && d == 1
		down = down && d == 9
	}
	return up || down
}

func hasKeyboardRow(s string) bool {
	lower := strings.ToLower(s)
	for _, row := range keyboardRows {
		for _, seq := range []string{row[:5], reversed(row)[:5]} {
			if strings.Contains(lower, seq) {
				return true
			}
		}
	}
	return false
}

func reversed(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}

// CheckAccounts validates the configured accounts before the server starts.
// A missing or weak admin is fatal. A misconfigured editor is dropped
// (EDITOR_USER is unset) and the portal runs admin-only.
func CheckAccounts(policy PasswordPolicy, logger *slog.Logger) error {
	admin := os.Getenv("ADMIN_USER")
	if admin == "" {
		return errors.New("ADMIN_USER must be set")
	}
	if os.Getenv("ADMIN_USER_PASSWORD") == "" {
		return errors.New("ADMIN_USER_PASSWORD must be set")
	}
	if err := policy.Check(os.Getenv("ADMIN_USER_PASSWORD")); err != nil {
		return fmt.Errorf("ADMIN_USER_PASSWORD rejected: %w", err)
	}

	editor := os.Getenv("EDITOR_USER")
	if editor == "" {
		logger.Info("editor role not configured, running admin-only")
		return nil
	}
	reason := ""
	switch {
	case editor == admin:
		reason = "EDITOR_USER equals ADMIN_USER"
	case os.Getenv("EDITOR_USER_PASSWORD") == "":
		reason = "EDITOR_USER_PASSWORD is empty"
	default:
		if err := policy.Check(os.Getenv("EDITOR_USER_PASSWORD")); err != nil {
			reason = err.Error()
		}
	}
	if reason != "" {
		logger.Warn("editor account disabled", slog.String("reason", reason))
		_ = os.Unsetenv("EDITOR_USER")
		_ = os.Unsetenv("EDITOR_USER_PASSWORD")
		return nil
	}
	logger.Info("editor role enabled", slog.String("user", editor))
	return nil
}
