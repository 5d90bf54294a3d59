package repository

import (
	"context"
	"database/sql"
	"fmt"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
)

// WatchlistRepository implements repository.WatchlistStore on SQLite.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates the watchlist store.
func NewWatchlistRepository(db *sql.DB) domrepo.WatchlistStore {
	return &WatchlistRepository{db: db}
}

func (r *WatchlistRepository) Create(ctx context.Context, w *models.WatchlistItem) (*models.WatchlistItem, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stock_watchlist (user_id, symbol, company_name, target_price, notes)
		 VALUES (?, ?, ?, ?, ?)`,
		w.UserID, w.Symbol, w.CompanyName, w.TargetPrice, w.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domrepo.ErrDuplicate
		}
		return nil, fmt.Errorf("create watchlist item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create watchlist item id: %w", err)
	}

	out := &models.WatchlistItem{}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, user_id, symbol, company_name, target_price, notes, created_at
		 FROM stock_watchlist WHERE id = ?`, id).
		Scan(&out.ID, &out.UserID, &out.Symbol, &out.CompanyName, &out.TargetPrice, &out.Notes, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get watchlist item: %w", err)
	}
	return out, nil
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, symbol, company_name, target_price, notes, created_at
		 FROM stock_watchlist WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer rows.Close()

	var out []*models.WatchlistItem
	for rows.Next() {
		w := &models.WatchlistItem{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.Symbol, &w.CompanyName, &w.TargetPrice, &w.Notes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan watchlist item: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WatchlistRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM stock_watchlist WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete watchlist item: %w", err)
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
