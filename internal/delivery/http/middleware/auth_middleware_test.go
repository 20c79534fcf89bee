package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scribe/config"
	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/domain/service"
	"scribe/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key-for-middleware"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func performRequest(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/getPosts", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenSubject string
	next := func(c echo.Context) error {
		seenSubject = deliverycontext.GetSubject(c)

		return c.NoContent(http.StatusOK)
	}

	middleware := NewAuthMiddleware(tokenSvc)
	err := middleware.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, seenSubject
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	token, err := tokenSvc.Issue("alice@example.com")
	require.NoError(t, err)

	rec, subject := performRequest(t, tokenSvc, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", subject)
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	token, err := tokenSvc.Issue("alice@example.com")
	require.NoError(t, err)

	rec, subject := performRequest(t, tokenSvc, "bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", subject)
}

func TestAuthMiddleware_RejectsBadCredentials(t *testing.T) {
	tokenSvc := newTestTokenService(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "scheme without token", header: "Bearer"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bare token without scheme", header: "some-token-value"},
		{name: "garbage token", header: "Bearer not-a-real-token"},
		{name: "truncated jwt", header: "Bearer a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, subject := performRequest(t, tokenSvc, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, subject)
		})
	}
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	token, err := tokenSvc.IssueWithTTL("alice@example.com", -time.Minute)
	require.NoError(t, err)

	rec, subject := performRequest(t, tokenSvc, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, subject)
}
