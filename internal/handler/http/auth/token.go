package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"newsportal/internal/handler/http/requestid"
	"newsportal/internal/handler/http/respond"
	authservice "newsportal/internal/service/auth"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when TokenHandler is given a non-positive expiry.
const DefaultTokenTTL = time.Hour

type loginRequest struct {
	Email    string `json:"email" example:"editor@example.com"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role      string `json:"role" example:"editor"`
	ExpiresAt int64  `json:"expires_at" example:"1767225600"`
}

// TokenHandler authenticates users and issues JWT tokens.
//
// @Summary      JWT トークン取得
// @Description  メールアドレスとパスワードで認証し、JWT トークンを発行します。著者レコードも作成/更新されます
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} tokenResponse "JWT トークン"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      401 {string} string "認証失敗"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "トークン生成失敗"
// @Router       /auth/token [post]
func TokenHandler(authService *authservice.AuthService, ttl time.Duration) http.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		fail := func(role, reason string, code int, msg string) {
			logger.Warn("authentication failed",
				slog.String("reason", reason),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			observeLogin(role, "failure", time.Since(start))
			http.Error(w, msg, code)
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail("unknown", "invalid_request", http.StatusBadRequest, "invalid request")
			return
		}

		id, err := authService.Login(r.Context(), authservice.Credentials{
			Username: req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, authservice.ErrInvalidCredentials) {
				fail("unknown", "invalid_credentials", http.StatusUnauthorized, "unauthorized")
				return
			}
			logger.Error("author upsert failed", slog.String("error", respond.SanitizeError(err)))
			fail("unknown", "author_upsert_failed", http.StatusInternalServerError, "internal server error")
			return
		}

		expiresAt := time.Now().Add(ttl)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
			Role:     id.Role,
			AuthorID: id.AuthorID,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   id.Email,
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		})
		signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			logger.Error("token generation failed", slog.String("error", err.Error()))
			fail(id.Role, "signing_failed", http.StatusInternalServerError, "token generation failed")
			return
		}

		logger.Info("authentication successful",
			slog.String("user_email", id.Email),
			slog.String("role", id.Role),
			slog.Int64("author_id", id.AuthorID),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		observeLogin(id.Role, "success", time.Since(start))

		respond.JSON(w, http.StatusOK, tokenResponse{
			Token:     signed,
			Role:      id.Role,
			ExpiresAt: expiresAt.Unix(),
		})
	}
}

// MeHandler returns the principal of the current token.
//
// @Summary      ログイン中のユーザー
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} User
// @Failure      401 {string} string "認証が必要"
// @Router       /auth/me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	respond.JSON(w, http.StatusOK, u)
}
