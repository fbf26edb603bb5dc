package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrDepositNotFound       = errors.New("deposit not found")
	ErrWithdrawalNotFound    = errors.New("withdrawal not found")
	ErrCryptoAddressNotFound = errors.New("crypto address not found")
)

// WalletRepository persists deposit and withdrawal requests and the platform receiving addresses.
type WalletRepository interface {
	CreateDeposit(ctx context.Context, deposit *entity.DepositRequest) error
	FindDepositByID(ctx context.Context, id uuid.UUID) (*entity.DepositRequest, error)
	ListDepositsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DepositRequest, error)
	ListDeposits(ctx context.Context, status *entity.ReviewStatus) ([]*entity.DepositRequest, error)

	// ReviewDeposit flips a PENDING deposit. Returns ErrAlreadyReviewed otherwise.
	ReviewDeposit(ctx context.Context, id uuid.UUID, update ReviewUpdate) error

	CreateWithdrawal(ctx context.Context, withdrawal *entity.WithdrawalRequest) error
	FindWithdrawalByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error)
	ListWithdrawalsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, status *entity.ReviewStatus) ([]*entity.WithdrawalRequest, error)

	// ReviewWithdrawal flips a PENDING withdrawal. Returns ErrAlreadyReviewed otherwise.
	ReviewWithdrawal(ctx context.Context, id uuid.UUID, update ReviewUpdate) error

	ListCryptoAddresses(ctx context.Context, activeOnly bool) ([]*entity.CryptoAddress, error)
	FindCryptoAddress(ctx context.Context, currency entity.Currency) (*entity.CryptoAddress, error)
	UpsertCryptoAddress(ctx context.Context, address *entity.CryptoAddress) error
	DeleteCryptoAddress(ctx context.Context, currency entity.Currency) error
}
