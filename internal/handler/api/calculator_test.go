package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinHub/internal/domain/models"
	"FinHub/internal/middleware"
	"FinHub/internal/service/auth"
	"FinHub/internal/usecase"
	applogger "FinHub/pkg/logger"
)

type fakeHistoryStore struct {
	lastLimit int
	calcs     []*models.CalcRecord
}

func (f *fakeHistoryStore) SaveChat(context.Context, *models.ChatRecord) error { return nil }

func (f *fakeHistoryStore) ListChat(context.Context, int64, string, int) ([]*models.ChatRecord, error) {
	return nil, nil
}

func (f *fakeHistoryStore) SaveCalculation(_ context.Context, rec *models.CalcRecord) error {
	f.calcs = append(f.calcs, rec)
	return nil
}

func (f *fakeHistoryStore) ListCalculations(_ context.Context, _ int64, limit int) ([]*models.CalcRecord, error) {
	f.lastLimit = limit
	return f.calcs, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordCalculation(string)        {}
func (noopMetrics) RecordChatAnswer(string)         {}
func (noopMetrics) RecordQuoteLookup(string)        {}
func (noopMetrics) RecordLastQuote(string, float64) {}
func (noopMetrics) RecordLatency(string, float64)   {}

func calculatorTestServer(t *testing.T, store *fakeHistoryStore) (*echo.Echo, string) {
	t.Helper()
	logger, err := applogger.New(&applogger.Config{Level: "error", Format: "json"})
	require.NoError(t, err)

	tokens := auth.NewService("test-secret", time.Hour)
	token, _, err := tokens.IssueToken(7, "priya")
	require.NoError(t, err)

	calcUC := usecase.NewCalculatorUseCase(store, noopMetrics{}, logger)
	h := NewCalculatorHandler(calcUC, middleware.NewAuth(tokens))

	e := echo.New()
	h.RegisterRoutes(e)
	return e, token
}

func TestCalculatorHistoryDefaultLimit(t *testing.T) {
	store := &fakeHistoryStore{calcs: []*models.CalcRecord{
		{ID: 1, UserID: 7, CalculatorType: "loan_emi", Inputs: "{}", Result: "{}"},
	}}
	e, token := calculatorTestServer(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/calculator/history", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, store.lastLimit)
	assert.Contains(t, rec.Body.String(), "loan_emi")
}

func TestCalculatorHistoryExplicitLimit(t *testing.T) {
	store := &fakeHistoryStore{}
	e, token := calculatorTestServer(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/calculator/history?limit=2", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, store.lastLimit)
}

func TestCalculatorHistoryRequiresAuth(t *testing.T) {
	e, _ := calculatorTestServer(t, &fakeHistoryStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/calculator/history", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
