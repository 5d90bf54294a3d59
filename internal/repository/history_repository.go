package repository

import (
	"context"
	"database/sql"
	"fmt"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
)

// HistoryRepository implements repository.HistoryStore on SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates the history store.
func NewHistoryRepository(db *sql.DB) domrepo.HistoryStore {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) SaveChat(ctx context.Context, rec *models.ChatRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_history (user_id, session_id, question, answer)
		 VALUES (?, ?, ?, ?)`,
		rec.UserID, rec.SessionID, rec.Question, rec.Answer)
	if err != nil {
		return fmt.Errorf("save chat record: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListChat(ctx context.Context, userID int64, sessionID string, limit int) ([]*models.ChatRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, user_id, session_id, question, answer, created_at
		 FROM chat_history WHERE user_id = ?`
	args := []interface{}{userID}
	if sessionID != "" {
		query += ` AND session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chat history: %w", err)
	}
	defer rows.Close()

	var out []*models.ChatRecord
	for rows.Next() {
		rec := &models.ChatRecord{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.SessionID, &rec.Question, &rec.Answer, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) SaveCalculation(ctx context.Context, rec *models.CalcRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculator_history (user_id, calculator_type, inputs, result)
		 VALUES (?, ?, ?, ?)`,
		rec.UserID, rec.CalculatorType, rec.Inputs, rec.Result)
	if err != nil {
		return fmt.Errorf("save calculation record: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListCalculations(ctx context.Context, userID int64, limit int) ([]*models.CalcRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, calculator_type, inputs, result, created_at
		 FROM calculator_history WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list calculation history: %w", err)
	}
	defer rows.Close()

	var out []*models.CalcRecord
	for rows.Next() {
		rec := &models.CalcRecord{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CalculatorType, &rec.Inputs, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
