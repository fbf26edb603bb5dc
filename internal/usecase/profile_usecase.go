package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// UpdateProfileInput defines the profile fields a user may change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,max=512"`
	Locale    *string `json:"locale,omitempty" validate:"omitempty,max=8"`
}
