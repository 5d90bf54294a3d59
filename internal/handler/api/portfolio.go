package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	"FinHub/internal/middleware"
	"FinHub/internal/usecase"
	apphttp "FinHub/pkg/http"
	applogger "FinHub/pkg/logger"
)

// PortfolioHandler serves holdings, watchlist and summary endpoints.
// Everything here requires a signed-in caller.
type PortfolioHandler struct {
	logger    *applogger.Logger
	portfolio *usecase.PortfolioUseCase
	guard     *middleware.Auth
}

func NewPortfolioHandler(logger *applogger.Logger, portfolio *usecase.PortfolioUseCase, guard *middleware.Auth) *PortfolioHandler {
	return &PortfolioHandler{logger: logger, portfolio: portfolio, guard: guard}
}

func (h *PortfolioHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/portfolio", h.guard.Required())
	g.GET("/holdings", h.ListHoldings)
	g.POST("/holdings", h.CreateHolding)
	g.PUT("/holdings/:id", h.UpdateHolding)
	g.DELETE("/holdings/:id", h.DeleteHolding)
	g.GET("/summary", h.Summary)
	g.GET("/watchlist", h.Watchlist)
	g.POST("/watchlist", h.AddWatchlistItem)
	g.DELETE("/watchlist/:id", h.RemoveWatchlistItem)

	// Autocomplete source for the holdings form, usable before signing in.
	e.GET("/api/portfolio/stocks/suggestions", h.Suggestions)
}

func (h *PortfolioHandler) Suggestions(c echo.Context) error {
	list := h.portfolio.Suggestions()
	return apphttp.ListResponse(c, list, int64(len(list)))
}

func (h *PortfolioHandler) ListHoldings(c echo.Context) error {
	valued, err := h.portfolio.ValuedHoldings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("list holdings failed", applogger.Error(err))
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.ListResponse(c, valued, int64(len(valued)))
}

func (h *PortfolioHandler) CreateHolding(c echo.Context) error {
	req := &models.CreateHoldingRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	holding, err := h.portfolio.CreateHolding(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		h.logger.Error("create holding failed", applogger.Error(err))
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.CreatedResponse(c, holding)
}

func (h *PortfolioHandler) UpdateHolding(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return apphttp.BadRequestResponse(c, "invalid id")
	}
	req := &models.UpdateHoldingRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	holding, err := h.portfolio.UpdateHolding(c.Request().Context(), middleware.UserID(c), id, req)
	if errors.Is(err, domrepo.ErrNotFound) {
		return apphttp.NotFoundResponse(c, "holding not found")
	}
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.SuccessResponse(c, holding)
}

func (h *PortfolioHandler) DeleteHolding(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return apphttp.BadRequestResponse(c, "invalid id")
	}
	err = h.portfolio.DeleteHolding(c.Request().Context(), middleware.UserID(c), id)
	if errors.Is(err, domrepo.ErrNotFound) {
		return apphttp.NotFoundResponse(c, "holding not found")
	}
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.NoContentResponse(c)
}

func (h *PortfolioHandler) Summary(c echo.Context) error {
	summary, err := h.portfolio.Summary(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.SuccessResponse(c, summary)
}

func (h *PortfolioHandler) Watchlist(c echo.Context) error {
	items, err := h.portfolio.Watchlist(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.ListResponse(c, items, int64(len(items)))
}

func (h *PortfolioHandler) AddWatchlistItem(c echo.Context) error {
	req := &models.CreateWatchlistItemRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	item, err := h.portfolio.AddWatchlistItem(c.Request().Context(), middleware.UserID(c), req)
	if errors.Is(err, domrepo.ErrDuplicate) {
		return apphttp.ConflictResponse(c, "symbol already on watchlist")
	}
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.CreatedResponse(c, item)
}

func (h *PortfolioHandler) RemoveWatchlistItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return apphttp.BadRequestResponse(c, "invalid id")
	}
	err = h.portfolio.RemoveWatchlistItem(c.Request().Context(), middleware.UserID(c), id)
	if errors.Is(err, domrepo.ErrNotFound) {
		return apphttp.NotFoundResponse(c, "watchlist item not found")
	}
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.NoContentResponse(c)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
