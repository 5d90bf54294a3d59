package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
)

// UserRepository implements repository.UserStore on SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates the user store.
func NewUserRepository(db *sql.DB) domrepo.UserStore {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, username, hashed_password, full_name, phone, is_active)
		 VALUES (?, ?, ?, ?, ?, 1)`,
		u.Email, u.Username, u.HashedPassword, u.FullName, u.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domrepo.ErrDuplicate
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create user id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, username, hashed_password, full_name, phone, is_active, created_at
		 FROM users WHERE `+where, arg).
		Scan(&u.ID, &u.Email, &u.Username, &u.HashedPassword, &u.FullName, &u.Phone, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domrepo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// isUniqueViolation matches the driver's constraint error text; the
// modernc driver has no exported error type for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
