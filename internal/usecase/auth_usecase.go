package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Locale   string `json:"locale" validate:"omitempty,max=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput carries the signed session token and the account it belongs to.
type SessionOutput struct {
	User      *entity.User `json:"user"`
	Token     string       `json:"-"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// AuthUsecase defines registration, login and session lookup.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
