package api

import (
	"github.com/labstack/echo/v4"

	"FinHub/internal/domain/models"
	"FinHub/internal/middleware"
	"FinHub/internal/usecase"
	apphttp "FinHub/pkg/http"
)

// CalculatorHandler serves the financial calculators. All endpoints
// work anonymously; signed-in calls additionally record history.
type CalculatorHandler struct {
	calc  *usecase.CalculatorUseCase
	guard *middleware.Auth
}

func NewCalculatorHandler(calc *usecase.CalculatorUseCase, guard *middleware.Auth) *CalculatorHandler {
	return &CalculatorHandler{calc: calc, guard: guard}
}

func (h *CalculatorHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/calculator", h.guard.Optional())
	g.POST("/future-value", h.FutureValue)
	g.POST("/loan-emi", h.LoanEMI)
	g.POST("/savings-plan", h.SavingsPlan)
	g.POST("/mortgage", h.Mortgage)
	g.POST("/investment-return", h.InvestmentReturn)
	g.GET("/history", h.History, h.guard.Required())
}

func (h *CalculatorHandler) FutureValue(c echo.Context) error {
	req := &models.FutureValueRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	res := h.calc.FutureValue(c.Request().Context(), middleware.UserID(c), req)
	return apphttp.SuccessResponse(c, res)
}

func (h *CalculatorHandler) LoanEMI(c echo.Context) error {
	req := &models.LoanEMIRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	res := h.calc.LoanEMI(c.Request().Context(), middleware.UserID(c), req)
	return apphttp.SuccessResponse(c, res)
}

func (h *CalculatorHandler) SavingsPlan(c echo.Context) error {
	req := &models.SavingsPlanRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	res := h.calc.SavingsPlan(c.Request().Context(), middleware.UserID(c), req)
	return apphttp.SuccessResponse(c, res)
}

func (h *CalculatorHandler) Mortgage(c echo.Context) error {
	req := &models.MortgageRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	res := h.calc.Mortgage(c.Request().Context(), middleware.UserID(c), req)
	return apphttp.SuccessResponse(c, res)
}

func (h *CalculatorHandler) InvestmentReturn(c echo.Context) error {
	req := &models.InvestmentReturnRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	res := h.calc.InvestmentReturn(c.Request().Context(), middleware.UserID(c), req)
	return apphttp.SuccessResponse(c, res)
}

func (h *CalculatorHandler) History(c echo.Context) error {
	req := &models.CalcHistoryRequest{}
	if verr := apphttp.ReadAndValidateRequest(c, req); verr != nil {
		return apphttp.BadRequestResponse(c, verr)
	}
	recs, err := h.calc.History(c.Request().Context(), middleware.UserID(c), req.Limit)
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}
	return apphttp.ListResponse(c, recs, int64(len(recs)))
}
