package usecase

import (
	"context"
	"encoding/json"
	"time"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	"FinHub/internal/service/calc"
	applogger "FinHub/pkg/logger"
)

// Calculator type labels as persisted in history.
const (
	CalcFutureValue      = "future_value"
	CalcLoanEMI          = "loan_emi"
	CalcSavingsPlan      = "savings_plan"
	CalcMortgage         = "mortgage"
	CalcInvestmentReturn = "investment_return"
)

// CalculatorUseCase runs calculator operations and records history for
// signed-in callers.
type CalculatorUseCase struct {
	history domrepo.HistoryStore
	metrics domrepo.Metrics
	logger  *applogger.Logger
}

func NewCalculatorUseCase(history domrepo.HistoryStore, metrics domrepo.Metrics, logger *applogger.Logger) *CalculatorUseCase {
	return &CalculatorUseCase{history: history, metrics: metrics, logger: logger}
}

func (uc *CalculatorUseCase) FutureValue(ctx context.Context, userID int64, req *models.FutureValueRequest) models.CalcResult {
	res := calc.FutureValue(req.Principal, req.Rate, req.Time, req.CompoundsPerYear)
	uc.record(ctx, userID, CalcFutureValue, req, res)
	return res
}

func (uc *CalculatorUseCase) LoanEMI(ctx context.Context, userID int64, req *models.LoanEMIRequest) models.CalcResult {
	res := calc.LoanEMI(req.Principal, req.Rate, req.TenureMonths)
	uc.record(ctx, userID, CalcLoanEMI, req, res)
	return res
}

func (uc *CalculatorUseCase) SavingsPlan(ctx context.Context, userID int64, req *models.SavingsPlanRequest) models.CalcResult {
	res := calc.SavingsPlan(req.InitialSavings, req.AnnualContribution, req.Rate, req.Years)
	uc.record(ctx, userID, CalcSavingsPlan, req, res)
	return res
}

func (uc *CalculatorUseCase) Mortgage(ctx context.Context, userID int64, req *models.MortgageRequest) models.CalcResult {
	res := calc.Mortgage(req.HomePrice, req.DownPayment, req.Rate, req.TenureYears, req.PropertyTaxRate, req.InsuranceRate)
	uc.record(ctx, userID, CalcMortgage, req, res)
	return res
}

func (uc *CalculatorUseCase) InvestmentReturn(ctx context.Context, userID int64, req *models.InvestmentReturnRequest) models.CalcResult {
	res := calc.InvestmentReturn(req.Principal, req.Rate, req.Years)
	uc.record(ctx, userID, CalcInvestmentReturn, req, res)
	return res
}

// History returns the caller's recent calculator invocations.
func (uc *CalculatorUseCase) History(ctx context.Context, userID int64, limit int) ([]*models.CalcRecord, error) {
	return uc.history.ListCalculations(ctx, userID, limit)
}

// record persists the invocation for signed-in users (userID > 0).
// History is best-effort: a failed write never fails the calculation.
func (uc *CalculatorUseCase) record(ctx context.Context, userID int64, calcType string, inputs interface{}, res models.CalcResult) {
	start := time.Now()
	defer func() {
		uc.metrics.RecordCalculation(calcType)
		uc.metrics.RecordLatency("calc_"+calcType, time.Since(start).Seconds())
	}()

	if userID <= 0 {
		return
	}
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return
	}
	resultJSON, err := json.Marshal(res.Result)
	if err != nil {
		return
	}
	rec := &models.CalcRecord{
		UserID:         userID,
		CalculatorType: calcType,
		Inputs:         string(inputsJSON),
		Result:         string(resultJSON),
	}
	if err := uc.history.SaveCalculation(ctx, rec); err != nil {
		uc.logger.Warn("save calculation history failed",
			applogger.Int64("user_id", userID),
			applogger.String("type", calcType),
			applogger.Error(err))
	}
}
