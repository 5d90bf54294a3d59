package usecase

import (
	"context"
	"errors"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	"FinHub/internal/service/auth"
	apphttp "FinHub/pkg/http"
)

// AuthUseCase covers signup, login and identity lookup.
type AuthUseCase struct {
	users domrepo.UserStore
	auth  *auth.Service
}

func NewAuthUseCase(users domrepo.UserStore, authSvc *auth.Service) *AuthUseCase {
	return &AuthUseCase{users: users, auth: authSvc}
}

// Signup registers an account. Email and username must both be unique.
func (uc *AuthUseCase) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	hash, err := uc.auth.HashPassword(req.Password)
	if err != nil {
		return nil, apphttp.InternalError("could not process password").WithError(err)
	}

	user, err := uc.users.Create(ctx, &models.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hash,
		FullName:       req.FullName,
		Phone:          req.Phone,
	})
	if errors.Is(err, domrepo.ErrDuplicate) {
		return nil, apphttp.ConflictError("email or username already registered")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials (username or email) and issues a token.
// Wrong name and wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := uc.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, domrepo.ErrNotFound) {
		user, err = uc.users.GetByEmail(ctx, req.Username)
	}
	if errors.Is(err, domrepo.ErrNotFound) {
		return nil, apphttp.UnauthorizedError("invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apphttp.UnauthorizedError("account disabled")
	}
	if !uc.auth.VerifyPassword(user.HashedPassword, req.Password) {
		return nil, apphttp.UnauthorizedError("invalid credentials")
	}

	token, _, err := uc.auth.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, apphttp.InternalError("could not issue token").WithError(err)
	}
	return &models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Me returns the account for a verified token subject.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*models.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if errors.Is(err, domrepo.ErrNotFound) {
		return nil, apphttp.NotFoundError("user not found")
	}
	return user, err
}
