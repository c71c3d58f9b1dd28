package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"newsportal/internal/handler/http/respond"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey struct{}

// User is the authenticated principal carried in the request context.
type User struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	AuthorID int64  `json:"author_id"`
}

// UserFromContext returns the user stored by Authz.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(ctxKey{}).(User)
	return u, ok
}

// WithUser stores u in ctx the same way Authz does.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// tokenClaims is the JWT payload issued by TokenHandler. aid is omitted for
// principals without an author record.
type tokenClaims struct {
	Role     string `json:"role"`
	AuthorID int64  `json:"aid,omitempty"`
	jwt.RegisteredClaims
}

// Authz lets public requests through (IsPublicRequest) and requires a valid
// HS256 bearer token whose role is granted the method and path on
// everything else: 401 without a usable token, 403 when the role falls short.
func Authz(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicRequest(r.Method, r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		user, err := validateJWT(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}
		allowed := checkRolePermission(user.Role, r.Method, r.URL.Path)
		observeAuthz(time.Since(start))
		if !allowed {
			countDenied(user.Role, r.Method)
			respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

var errNoBearer = errors.New("missing bearer token")

func validateJWT(header string, secret []byte) (User, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return User{}, errNoBearer
	}
	var c tokenClaims
	_, err := jwt.ParseWithClaims(raw, &c,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return User{}, fmt.Errorf("invalid token: %w", err)
	}
	if c.Subject == "" || c.Role == "" {
		return User{}, errors.New("token lacks sub or role")
	}
	return User{Email: c.Subject, Role: c.Role, AuthorID: c.AuthorID}, nil
}
