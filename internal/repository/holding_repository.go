package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
)

// HoldingRepository implements repository.HoldingStore on SQLite.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates the holding store.
func NewHoldingRepository(db *sql.DB) domrepo.HoldingStore {
	return &HoldingRepository{db: db}
}

const holdingColumns = "id, user_id, symbol, company_name, quantity, buy_price, buy_date, notes, created_at"

func (r *HoldingRepository) Create(ctx context.Context, h *models.Holding) (*models.Holding, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolio_holdings (user_id, symbol, company_name, quantity, buy_price, buy_date, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.UserID, h.Symbol, h.CompanyName, h.Quantity, h.BuyPrice, h.BuyDate, h.Notes)
	if err != nil {
		return nil, fmt.Errorf("create holding: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create holding id: %w", err)
	}
	return r.GetByID(ctx, id, h.UserID)
}

func (r *HoldingRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Holding, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+holdingColumns+` FROM portfolio_holdings WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer rows.Close()

	var out []*models.Holding
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HoldingRepository) GetByID(ctx context.Context, id, userID int64) (*models.Holding, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+holdingColumns+` FROM portfolio_holdings WHERE id = ? AND user_id = ?`, id, userID)
	h, err := scanHolding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domrepo.ErrNotFound
	}
	return h, err
}

func (r *HoldingRepository) Update(ctx context.Context, h *models.Holding) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE portfolio_holdings
		 SET symbol = ?, company_name = ?, quantity = ?, buy_price = ?, buy_date = ?, notes = ?
		 WHERE id = ? AND user_id = ?`,
		h.Symbol, h.CompanyName, h.Quantity, h.BuyPrice, h.BuyDate, h.Notes, h.ID, h.UserID)
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domrepo.ErrNotFound
	}
	return nil
}

func (r *HoldingRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM portfolio_holdings WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domrepo.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHolding(row rowScanner) (*models.Holding, error) {
	h := &models.Holding{}
	err := row.Scan(&h.ID, &h.UserID, &h.Symbol, &h.CompanyName, &h.Quantity,
		&h.BuyPrice, &h.BuyDate, &h.Notes, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan holding: %w", err)
	}
	return h, nil
}
