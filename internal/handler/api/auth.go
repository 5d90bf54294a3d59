// Package api holds the HTTP handlers.
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"FinHub/internal/domain/models"
	"FinHub/internal/middleware"
	"FinHub/internal/usecase"
	apphttp "FinHub/pkg/http"
	applogger "FinHub/pkg/logger"
)

// AuthHandler serves signup, login, logout and identity lookup.
type AuthHandler struct {
	logger *applogger.Logger
	auth   *usecase.AuthUseCase
	guard  *middleware.Auth
}

func NewAuthHandler(logger *applogger.Logger, auth *usecase.AuthUseCase, guard *middleware.Auth) *AuthHandler {
	return &AuthHandler{logger: logger, auth: auth, guard: guard}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me, h.guard.Required())
}

func (h *AuthHandler) Signup(c echo.Context) error {
	req := &models.SignupRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}

	user, err := h.auth.Signup(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("signup failed", applogger.String("username", req.Username), applogger.Error(err))
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.CreatedResponse(c, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	req := &models.LoginRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}

	token, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}

	// mirror the token into a cookie for browser clients
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token.AccessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return apphttp.SuccessResponse(c, token)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return apphttp.SuccessResponse(c, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.auth.Me(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.SuccessResponse(c, user)
}
