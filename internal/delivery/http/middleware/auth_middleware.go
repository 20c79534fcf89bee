package middleware

import (
	"strings"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/delivery/http/response"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT bearer authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the token
// subject on the context for handlers to use. Any malformed or
// unverifiable credential gets the same 401 response.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Authorization header is missing")
		}

		// Fields tolerates extra whitespace; a scheme without a token
		// yields a single field and is rejected here instead of panicking.
		parts := strings.Fields(authHeader)
		if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Decode(parts[1])
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		if claims.Subject == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Subject missing from token")
		}

		deliverycontext.SetSubject(c, claims.Subject)

		return next(c)
	}
}
