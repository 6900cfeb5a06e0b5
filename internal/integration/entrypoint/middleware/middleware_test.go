package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/internal/application/adapter"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	adapter.TokenService
	claims *adapter.TokenClaims
	err    error
}

func (s stubTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return s.claims, s.err
}

func protectedEngine(tokens adapter.TokenService) *gin.Engine {
	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return engine
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		header string
		tokens stubTokenService
		status int
		body   string
	}{
		{"missing header", "", stubTokenService{}, http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"wrong scheme", "Basic abc", stubTokenService{}, http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"empty token", "Bearer   ", stubTokenService{}, http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"expired", "Bearer t", stubTokenService{err: domainerror.ErrExpiredToken}, http.StatusUnauthorized, string(domainerror.ErrCodeExpiredToken)},
		{"invalid", "Bearer t", stubTokenService{err: domainerror.ErrInvalidToken}, http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"valid", "Bearer t", stubTokenService{claims: &adapter.TokenClaims{UserID: userID}}, http.StatusOK, userID.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protectedEngine(tt.tokens).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/register", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(path string) int {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("/login"))
	assert.Equal(t, http.StatusOK, hit("/login"))
	assert.Equal(t, http.StatusTooManyRequests, hit("/login"))
	assert.Equal(t, http.StatusOK, hit("/register"), "routes are limited independently")

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, hit("/login"))

	now = now.Add(2 * time.Minute)
	rl.Sweep()
	rl.mu.Lock()
	require.Empty(t, rl.windows)
	rl.mu.Unlock()
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, time.Minute)
	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
