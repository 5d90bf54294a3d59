package api

import (
	"github.com/labstack/echo/v4"

	"FinHub/internal/domain/models"
	"FinHub/internal/middleware"
	"FinHub/internal/service/ratelimit"
	"FinHub/internal/usecase"
	apphttp "FinHub/pkg/http"
)

// askBurst / askPerSec throttle questions per client IP so one client
// cannot exhaust the AI provider quota.
const (
	askBurst  = 10
	askPerSec = 0.5
)

// ChatHandler serves the conversational assistant. Asking works
// anonymously; history requires a signed-in caller.
type ChatHandler struct {
	assistant *usecase.AssistantUseCase
	guard     *middleware.Auth
	rl        *ratelimit.Limiter
}

func NewChatHandler(assistant *usecase.AssistantUseCase, guard *middleware.Auth) *ChatHandler {
	return &ChatHandler{assistant: assistant, guard: guard, rl: ratelimit.New()}
}

func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/chat")
	g.POST("/ask", h.Ask, h.guard.Optional())
	g.GET("/history", h.History, h.guard.Required())
}

func (h *ChatHandler) Ask(c echo.Context) error {
	if !h.rl.Allow(c.RealIP(), askBurst, askPerSec) {
		return apphttp.TooManyRequestsResponse(c, "too many questions, slow down")
	}
	req := &models.AskRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	ans, err := h.assistant.Ask(c.Request().Context(), middleware.UserID(c), req.SessionID, req.Message)
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.SuccessResponse(c, ans)
}

func (h *ChatHandler) History(c echo.Context) error {
	req := &models.ChatHistoryRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	recs, err := h.assistant.History(c.Request().Context(), middleware.UserID(c), req.SessionID, req.Limit)
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.ListResponse(c, recs, int64(len(recs)))
}
