package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrShopNotFound         = errors.New("shop not found")
	ErrShopSlugTaken        = errors.New("shop slug taken")
	ErrVerificationNotFound = errors.New("verification not found")
	// ErrAlreadyReviewed is returned when a review targets a request that is no longer PENDING.
	ErrAlreadyReviewed = errors.New("request already reviewed")
)

// ShopRepository persists seller shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error

	// SlugExists reports whether any shop already uses slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	CreditBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// DebitBalance returns ErrInsufficientBalance when the shop cannot cover amount.
	DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

// ReviewUpdate describes the outcome a reviewer records on a PENDING request.
type ReviewUpdate struct {
	Status     entity.ReviewStatus
	Note       string
	ReviewerID uuid.UUID
	ReviewedAt time.Time
}

// VerificationRepository persists shop verification requests.
type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.ShopVerification) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopVerification, error)

	// FindLatestByUser returns the most recent request of the user.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.ShopVerification, error)
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)
	List(ctx context.Context, status *entity.ReviewStatus) ([]*entity.ShopVerification, error)

	// MarkReviewed flips a PENDING request. Returns ErrAlreadyReviewed otherwise.
	MarkReviewed(ctx context.Context, id uuid.UUID, update ReviewUpdate) error
	AttachShop(ctx context.Context, id, shopID uuid.UUID) error
}
