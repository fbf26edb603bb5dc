package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletUsecase covers balances, crypto deposits and withdrawals.
type WalletUsecase interface {
	Overview(ctx context.Context, userID uuid.UUID) (*WalletOverview, error)
	DepositQR(ctx context.Context, currency string) ([]byte, error)

	CreateDeposit(ctx context.Context, userID uuid.UUID, input *CreateDepositInput) (*entity.DepositRequest, error)
	ListMyDeposits(ctx context.Context, userID uuid.UUID) ([]*entity.DepositRequest, error)
	CreateWithdrawal(ctx context.Context, userID uuid.UUID, input *CreateWithdrawalInput) (*entity.WithdrawalRequest, error)
	ListMyWithdrawals(ctx context.Context, userID uuid.UUID) ([]*entity.WithdrawalRequest, error)

	ListDeposits(ctx context.Context, query *ReviewListQuery) ([]*entity.DepositRequest, error)
	ReviewDeposit(ctx context.Context, reviewerID, depositID uuid.UUID, input *ReviewInput) (*entity.DepositRequest, error)
	ListWithdrawals(ctx context.Context, query *ReviewListQuery) ([]*entity.WithdrawalRequest, error)
	ReviewWithdrawal(ctx context.Context, reviewerID, withdrawalID uuid.UUID, input *ReviewInput) (*entity.WithdrawalRequest, error)

	ListCryptoAddresses(ctx context.Context) ([]*entity.CryptoAddress, error)
	SetCryptoAddress(ctx context.Context, actorID uuid.UUID, currency string, input *CryptoAddressInput) (*entity.CryptoAddress, error)
	DeleteCryptoAddress(ctx context.Context, currency string) error
}

// WalletOverview is what the wallet page shows.
type WalletOverview struct {
	Balance     decimal.Decimal         `json:"balance"`
	ShopBalance *decimal.Decimal        `json:"shopBalance,omitempty"`
	Addresses   []*entity.CryptoAddress `json:"addresses"`
}

// CreateDepositInput reports a transfer the user has already sent.
type CreateDepositInput struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" validate:"required"`
	TxHash   string          `json:"txHash" validate:"omitempty,max=255"`
}

// CreateWithdrawalInput asks staff to pay out to an external wallet.
type CreateWithdrawalInput struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" validate:"required"`
	WalletAddress string          `json:"walletAddress" validate:"required,max=255"`
	Source        string          `json:"source" validate:"omitempty,oneof=USER SHOP"`
}

// ReviewListQuery filters a staff review queue.
type ReviewListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// CryptoAddressInput sets the platform's receiving address for one currency.
type CryptoAddressInput struct {
	Address  string `json:"address" validate:"required,max=255"`
	Network  string `json:"network" validate:"omitempty,max=64"`
	IsActive *bool  `json:"isActive,omitempty"`
}
