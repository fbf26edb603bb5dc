package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationUsecase turns users into sellers.
type VerificationUsecase interface {
	GetMine(ctx context.Context, userID uuid.UUID) (*VerificationStatus, error)
	Submit(ctx context.Context, userID uuid.UUID, input *SubmitVerificationInput) (*entity.ShopVerification, error)

	List(ctx context.Context, query *ReviewListQuery) ([]*entity.ShopVerification, error)
	Review(ctx context.Context, reviewerID, verificationID uuid.UUID, input *ReviewInput) (*entity.ShopVerification, error)
}

// VerificationStatus is the caller's latest request and shop, either may be nil.
type VerificationStatus struct {
	Verification *entity.ShopVerification `json:"verification"`
	Shop         *entity.Shop             `json:"shop"`
}

// SubmitVerificationInput is a request to open a shop.
type SubmitVerificationInput struct {
	ShopName     string `json:"shopName" validate:"required,max=120"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"omitempty,max=32"`
	DocumentURL  string `json:"documentUrl" validate:"omitempty,max=512"`
}
