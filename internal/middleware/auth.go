// Package middleware holds application middlewares that need domain
// services, as opposed to the generic ones under pkg/http/middleware.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"FinHub/internal/service/auth"
	apphttp "FinHub/pkg/http"
)

const (
	userIDKey   = "auth.user_id"
	usernameKey = "auth.username"

	// TokenCookie mirrors the bearer header for browser clients.
	TokenCookie = "access_token"
)

// Auth extracts and verifies the caller's token.
type Auth struct {
	tokens *auth.Service
}

func NewAuth(tokens *auth.Service) *Auth {
	return &Auth{tokens: tokens}
}

// Required rejects requests without a valid token.
func (a *Auth) Required() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := a.claims(c)
			if err != nil {
				return apphttp.UnauthorizedResponse(c, "missing or invalid token")
			}
			c.Set(userIDKey, claims.UserID)
			c.Set(usernameKey, claims.Username)
			return next(c)
		}
	}
}

// Optional attaches identity when a valid token is present and lets
// anonymous requests through.
func (a *Auth) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := a.claims(c); err == nil {
				c.Set(userIDKey, claims.UserID)
				c.Set(usernameKey, claims.Username)
			}
			return next(c)
		}
	}
}

// claims reads the token from the Authorization header or, failing
// that, the cookie.
func (a *Auth) claims(c echo.Context) (*auth.Claims, error) {
	token := ""
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		token = strings.TrimPrefix(h, "Bearer ")
		token = strings.TrimPrefix(token, "bearer ")
	}
	if token == "" {
		if cookie, err := c.Cookie(TokenCookie); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, echo.ErrUnauthorized
	}
	return a.tokens.ParseToken(token)
}

// UserID returns the authenticated user id, or 0 for anonymous.
func UserID(c echo.Context) int64 {
	if id, ok := c.Get(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// Username returns the authenticated username, or "".
func Username(c echo.Context) string {
	if name, ok := c.Get(usernameKey).(string); ok {
		return name
	}
	return ""
}
