package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/validator"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountUsecase lets each test script the usecase outcome.
type fakeAccountUsecase struct {
	signUpFn func(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error)
	loginFn  func(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error)
}

func (f *fakeAccountUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	return f.signUpFn(ctx, input)
}

func (f *fakeAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	return f.loginFn(ctx, input)
}

// newAccountEcho wires the handler into an echo instance with the
// shared validator and error handler, mirroring the real server setup.
func newAccountEcho(uc usecase.AccountUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	h := NewAccountHandler(uc, discardLogger())
	e.POST("/signup", h.SignUp)
	e.POST("/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_SignUp(t *testing.T) {
	uc := &fakeAccountUsecase{
		signUpFn: func(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
			assert.Equal(t, "alice@example.com", input.Email)
			assert.Equal(t, "s3cret", input.Password)

			return &usecase.TokenOutput{AccessToken: "issued-token"}, nil
		},
	}
	e := newAccountEcho(uc)

	rec := postJSON(e, "/signup", `{"email":"alice@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "issued-token", body.Data.AccessToken)
}

func TestAccountHandler_SignUp_DuplicateEmail(t *testing.T) {
	uc := &fakeAccountUsecase{
		signUpFn: func(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "signup failed")
		},
	}
	e := newAccountEcho(uc)

	rec := postJSON(e, "/signup", `{"email":"alice@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAccountHandler_SignUp_InvalidInput(t *testing.T) {
	uc := &fakeAccountUsecase{
		signUpFn: func(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
			t.Fatal("usecase must not be called for invalid input")

			return nil, nil
		},
	}
	e := newAccountEcho(uc)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email": "alice@`},
		{name: "missing password", body: `{"email":"alice@example.com"}`},
		{name: "missing email", body: `{"password":"s3cret"}`},
		{name: "not an email", body: `{"email":"not-an-email","password":"s3cret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(e, "/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	uc := &fakeAccountUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
			return &usecase.TokenOutput{AccessToken: "fresh-token"}, nil
		},
	}
	e := newAccountEcho(uc)

	rec := postJSON(e, "/login", `{"email":"alice@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-token")
}

func TestAccountHandler_Login_BadCredentials(t *testing.T) {
	uc := &fakeAccountUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		},
	}
	e := newAccountEcho(uc)

	rec := postJSON(e, "/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestHealthCheck(t *testing.T) {
	e := newAccountEcho(&fakeAccountUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
