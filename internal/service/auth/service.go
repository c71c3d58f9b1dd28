// Package auth holds the framework-agnostic authentication logic: credential
// checks through a pluggable provider and resolution of the signed-in author.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsportal/internal/domain/entity"
)

// ErrInvalidCredentials is returned by Login when the provider rejects the
// credentials or cannot map the user to a role.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// AuthProvider defines the interface for authentication providers.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser returns the role of the user with the given email.
	IdentifyUser(ctx context.Context, email string) (string, error)

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// AuthorStore persists the author record of a signed-in user.
type AuthorStore interface {
	Upsert(ctx context.Context, author *entity.Author) error
}

// Identity is the result of a successful login.
type Identity struct {
	Email    string
	Role     string
	AuthorID int64
}

// AuthService handles authentication business logic.
type AuthService struct {
	provider AuthProvider
	authors  AuthorStore
	now      func() time.Time
}

// NewAuthService creates a new authentication service. authors may be nil,
// in which case logins do not resolve an author.
func NewAuthService(provider AuthProvider, authors AuthorStore) *AuthService {
	return &AuthService{
		provider: provider,
		authors:  authors,
		now:      time.Now,
	}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// Login checks the credentials, resolves the role and upserts the matching
// author so that articles can be attributed to the user.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*Identity, error) {
	if err := s.provider.ValidateCredentials(ctx, creds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	role, err := s.provider.IdentifyUser(ctx, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	id := &Identity{Email: creds.Username, Role: role}
	if s.authors == nil {
		return id, nil
	}

	author := &entity.Author{
		Email:     creds.Username,
		Name:      DisplayName(creds.Username),
		CreatedAt: s.now().UTC(),
	}
	if err := s.authors.Upsert(ctx, author); err != nil {
		return nil, fmt.Errorf("upsert author: %w", err)
	}
	id.AuthorID = author.ID
	return id, nil
}

// DisplayName derives an author name from an email address: the local part
// with dots and underscores turned into spaces.
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	name := strings.TrimSpace(strings.NewReplacer(".", " ", "_", " ").Replace(local))
	if name == "" {
		return email
	}
	return name
}
