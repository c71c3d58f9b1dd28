package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValidation(t *testing.T) {
	limits := InputLimits{MaxAuthHeader: 64, MaxPathLength: 32, MaxQueryLength: 24, MaxBodyBytes: 16}

	var readErr error
	handler := InputValidation(limits)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		if readErr != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		target     string
		auth       string
		body       string
		wantStatus int
	}{
		{"within limits", "/articles?search=vote", "Bearer abc", `{"title":"x"}`, http.StatusOK},
		{"authorization header too large", "/articles", "Bearer " + strings.Repeat("a", 64), "", http.StatusRequestHeaderFieldsTooLarge},
		{"path at limit", "/articles/" + strings.Repeat("s", 22), "", "", http.StatusOK},
		{"path too long", "/articles/" + strings.Repeat("s", 23), "", "", http.StatusRequestURITooLong},
		{"query too long", "/articles?search=" + strings.Repeat("q", 20), "", "", http.StatusRequestURITooLong},
		{"body too large", "/articles", "", strings.Repeat("b", 17), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoadInputLimits(t *testing.T) {
	assert.Equal(t, DefaultInputLimits(), LoadInputLimits())

	t.Setenv("MAX_REQUEST_BODY_BYTES", "1024")
	t.Setenv("MAX_QUERY_LENGTH", "-1")
	l := LoadInputLimits()
	assert.Equal(t, int64(1024), l.MaxBodyBytes)
	assert.Equal(t, DefaultInputLimits().MaxQueryLength, l.MaxQueryLength)
}
