package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserAdminUsecase is the staff user directory.
type UserAdminUsecase interface {
	List(ctx context.Context, query *UserListQuery) (*UserPage, error)
	UpdateAccess(ctx context.Context, actorID, userID uuid.UUID, input *UpdateAccessInput) (*entity.User, error)
	AdjustBalance(ctx context.Context, actorID, userID uuid.UUID, input *BalanceAdjustmentInput) (*entity.User, error)
}

// UserListQuery filters the user directory.
type UserListQuery struct {
	PageQuery
	Query string `query:"q" validate:"omitempty,max=120"`
	Role  string `query:"role" validate:"omitempty,oneof=USER ADMIN MANAGER"`
}

// UserPage is one page of users.
type UserPage struct {
	Users []*entity.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UpdateAccessInput changes a user's role or selling permission.
type UpdateAccessInput struct {
	Role    *string `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN MANAGER"`
	CanSell *bool   `json:"canSell,omitempty"`
}

// BalanceAdjustmentInput credits (positive) or debits (negative) a user's balance.
type BalanceAdjustmentInput struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"omitempty,max=500"`
}
