package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"FinHub/internal/service/quotes"
	"FinHub/internal/usecase"
	apphttp "FinHub/pkg/http"
	applogger "FinHub/pkg/logger"
)

// QuotesHandler serves spot quotes and the WebSocket stream. Both
// endpoints are public.
type QuotesHandler struct {
	logger    *applogger.Logger
	portfolio *usecase.PortfolioUseCase
	streamer  *quotes.Streamer
}

func NewQuotesHandler(logger *applogger.Logger, portfolio *usecase.PortfolioUseCase, streamer *quotes.Streamer) *QuotesHandler {
	return &QuotesHandler{logger: logger, portfolio: portfolio, streamer: streamer}
}

func (h *QuotesHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/quotes")
	g.GET("/stream", h.Stream)
	g.GET("/:symbol", h.Quote)
}

func (h *QuotesHandler) Quote(c echo.Context) error {
	symbol := c.Param("symbol")
	if symbol == "" {
		return apphttp.BadRequestResponse(c, "symbol required")
	}
	return apphttp.SuccessResponse(c, h.portfolio.Quote(symbol))
}

// Stream upgrades to WebSocket and pushes ticks for ?symbols=TCS,INFY
// (all reference symbols when omitted) until the client disconnects.
func (h *QuotesHandler) Stream(c echo.Context) error {
	var symbols []string
	if raw := c.QueryParam("symbols"); raw != "" {
		symbols = strings.Split(raw, ",")
	}
	err := h.streamer.Stream(c.Request().Context(), c.Response(), c.Request(), symbols)
	if err != nil {
		h.logger.Warn("quote stream failed", applogger.Error(err))
	}
	return nil
}
