package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	authservice "newsportal/internal/service/auth"
)

// MultiUserAuthProvider authenticates the admin and the optional editor
// configured through environment variables.
type MultiUserAuthProvider struct {
	policy PasswordPolicy
}

func NewMultiUserAuthProvider(policy PasswordPolicy) *MultiUserAuthProvider {
	return &MultiUserAuthProvider{policy: policy}
}

func (p *MultiUserAuthProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return errors.New("credentials must not be empty")
	}
	if err := p.policy.Check(creds.Password); err != nil {
		return fmt.Errorf("password policy: %w", err)
	}
	for _, acc := range envAccounts {
		if matches(creds.Username, os.Getenv(acc.userKey)) && matches(creds.Password, os.Getenv(acc.passKey)) {
			return nil
		}
	}
	return errors.New("invalid credentials")
}

// IdentifyUser maps a configured email to its role.
func (p *MultiUserAuthProvider) IdentifyUser(_ context.Context, email string) (string, error) {
	if email == "" {
		return "", errors.New("email must not be empty")
	}
	for _, acc := range envAccounts {
		if matches(email, os.Getenv(acc.userKey)) {
			return acc.role, nil
		}
	}
	return "", errors.New("user not found")
}

func (p *MultiUserAuthProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.policy.MinLength,
		WeakPasswords:     p.policy.Weak,
	}
}

func (p *MultiUserAuthProvider) Name() string { return "multi-user" }

// 定数時間比較。未設定のアカウントには一致しない
func matches(got, want string) bool {
	return want != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
