package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	apphttp "FinHub/pkg/http"
)

type fakeHoldingStore struct {
	nextID   int64
	holdings map[int64]*models.Holding
}

func newFakeHoldingStore() *fakeHoldingStore {
	return &fakeHoldingStore{holdings: map[int64]*models.Holding{}}
}

func (f *fakeHoldingStore) Create(_ context.Context, h *models.Holding) (*models.Holding, error) {
	f.nextID++
	h.ID = f.nextID
	cp := *h
	f.holdings[h.ID] = &cp
	return h, nil
}

func (f *fakeHoldingStore) ListByUser(_ context.Context, userID int64) ([]*models.Holding, error) {
	var out []*models.Holding
	for _, h := range f.holdings {
		if h.UserID == userID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeHoldingStore) GetByID(_ context.Context, id, userID int64) (*models.Holding, error) {
	h, ok := f.holdings[id]
	if !ok || h.UserID != userID {
		return nil, domrepo.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHoldingStore) Update(_ context.Context, h *models.Holding) error {
	prev, ok := f.holdings[h.ID]
	if !ok || prev.UserID != h.UserID {
		return domrepo.ErrNotFound
	}
	cp := *h
	f.holdings[h.ID] = &cp
	return nil
}

func (f *fakeHoldingStore) Delete(_ context.Context, id, userID int64) error {
	h, ok := f.holdings[id]
	if !ok || h.UserID != userID {
		return domrepo.ErrNotFound
	}
	delete(f.holdings, id)
	return nil
}

func TestCreateHoldingParsesBuyDate(t *testing.T) {
	uc := NewPortfolioUseCase(newFakeHoldingStore(), nil, nil)

	h, err := uc.CreateHolding(context.Background(), 1, &models.CreateHoldingRequest{
		Symbol:      "infy",
		CompanyName: "Infosys Ltd",
		Quantity:    10,
		BuyPrice:    1500,
		BuyDate:     "2024-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "INFY", h.Symbol)
	assert.Equal(t, 2024, h.BuyDate.Year())
	assert.Equal(t, 3, int(h.BuyDate.Month()))
	assert.Equal(t, 15, h.BuyDate.Day())
}

func TestCreateHoldingRejectsBadBuyDate(t *testing.T) {
	store := newFakeHoldingStore()
	uc := NewPortfolioUseCase(store, nil, nil)

	_, err := uc.CreateHolding(context.Background(), 1, &models.CreateHoldingRequest{
		Symbol:      "INFY",
		CompanyName: "Infosys Ltd",
		Quantity:    10,
		BuyPrice:    1500,
		BuyDate:     "15/03/2024",
	})
	require.Error(t, err)

	appErr, ok := err.(*apphttp.AppError)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, 400, appErr.Status)
	assert.Empty(t, store.holdings)
}

func TestUpdateHoldingBuyDate(t *testing.T) {
	store := newFakeHoldingStore()
	uc := NewPortfolioUseCase(store, nil, nil)

	h, err := uc.CreateHolding(context.Background(), 1, &models.CreateHoldingRequest{
		Symbol:      "TCS",
		CompanyName: "Tata Consultancy Services",
		Quantity:    5,
		BuyPrice:    3800,
		BuyDate:     "2024-01-02",
	})
	require.NoError(t, err)

	bad := "not-a-date"
	_, err = uc.UpdateHolding(context.Background(), 1, h.ID, &models.UpdateHoldingRequest{BuyDate: &bad})
	require.Error(t, err)

	good := "2024-06-30"
	upd, err := uc.UpdateHolding(context.Background(), 1, h.ID, &models.UpdateHoldingRequest{BuyDate: &good})
	require.NoError(t, err)
	assert.Equal(t, 6, int(upd.BuyDate.Month()))
	assert.Equal(t, 30, upd.BuyDate.Day())
}
