package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// walletService implements the WalletUsecase interface.
//
// Reviews are two conditional statements in one transaction: the request row flips
// from PENDING only if it is still PENDING, then the balance moves with a single
// arithmetic UPDATE (debits additionally require balance >= amount). A second review
// of the same request therefore changes nothing and reports REQUEST_ALREADY_REVIEWED.
type walletService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	logger    *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		txManager: params.TxManager,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func mapWalletError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDepositNotFound):
		return errors.Wrap(domainerrors.ErrDepositNotFound, "deposit not found")
	case errors.Is(err, repository.ErrWithdrawalNotFound):
		return errors.Wrap(domainerrors.ErrWithdrawalNotFound, "withdrawal not found")
	case errors.Is(err, repository.ErrCryptoAddressNotFound):
		return errors.Wrap(domainerrors.ErrCryptoAddressNotFound, "crypto address not found")
	case errors.Is(err, repository.ErrAlreadyReviewed):
		return errors.Wrap(domainerrors.ErrRequestAlreadyReviewed, "request already reviewed")
	default:
		return errors.Wrap(err, "wallet operation failed")
	}
}

// Overview returns the caller's balances and the active deposit addresses.
func (srv *walletService) Overview(ctx context.Context, userID uuid.UUID) (*usecase.WalletOverview, error) {
	overview := &usecase.WalletOverview{Addresses: []*entity.CryptoAddress{}}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findUser(ctx, repoFactory.NewUserRepository(), userID)
		if err != nil {
			return err
		}
		overview.Balance = user.Balance

		shop, err := repoFactory.NewShopRepository().FindByOwner(ctx, userID)
		switch {
		case err == nil:
			balance := shop.Balance
			overview.ShopBalance = &balance
		case !errors.Is(err, repository.ErrShopNotFound):
			return errors.Wrap(err, "failed to find shop")
		}

		addresses, err := repoFactory.NewWalletRepository().ListCryptoAddresses(ctx, true)
		if err != nil {
			return errors.Wrap(err, "failed to list crypto addresses")
		}
		if addresses != nil {
			overview.Addresses = addresses
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return overview, nil
}

func findActiveAddress(ctx context.Context, repo repository.WalletRepository, currency entity.Currency) (*entity.CryptoAddress, error) {
	address, err := repo.FindCryptoAddress(ctx, currency)
	if err != nil {
		return nil, mapWalletError(err)
	}
	if !address.IsActive {
		return nil, errors.Wrapf(domainerrors.ErrCryptoAddressNotFound, "%s deposits are disabled", currency)
	}

	return address, nil
}

// DepositQR renders the active deposit address of a currency as a PNG QR code.
func (srv *walletService) DepositQR(ctx context.Context, rawCurrency string) ([]byte, error) {
	currency, err := parseCurrency(rawCurrency)
	if err != nil {
		return nil, err
	}

	var address *entity.CryptoAddress
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findActiveAddress(ctx, repoFactory.NewWalletRepository(), currency)
		address = found

		return err
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateDepositQR(address)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render QR code: "+err.Error())
	}

	return png, nil
}

// CreateDeposit records a PENDING deposit claim for staff to verify.
func (srv *walletService) CreateDeposit(ctx context.Context, userID uuid.UUID, input *usecase.CreateDepositInput) (*entity.DepositRequest, error) {
	currency, err := parseCurrency(input.Currency)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(input.Amount, "amount"); err != nil {
		return nil, err
	}

	now := time.Now()
	deposit := &entity.DepositRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    input.Amount,
		Currency:  currency,
		TxHash:    strings.TrimSpace(input.TxHash),
		Status:    entity.ReviewStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		walletRepo := repoFactory.NewWalletRepository()
		if _, err := findActiveAddress(ctx, walletRepo, currency); err != nil {
			return err
		}

		return errors.Wrap(walletRepo.CreateDeposit(ctx, deposit), "failed to create deposit")
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Deposit requested",
		slog.Any("depositID", deposit.ID), slog.String("amount", deposit.Amount.String()), slog.String("currency", string(currency)))

	return deposit, nil
}

// ListMyDeposits returns the caller's deposits, newest first.
func (srv *walletService) ListMyDeposits(ctx context.Context, userID uuid.UUID) ([]*entity.DepositRequest, error) {
	deposits := []*entity.DepositRequest{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWalletRepository().ListDepositsByUser(ctx, userID)
		if found != nil {
			deposits = found
		}

		return errors.Wrap(err, "failed to list deposits")
	})
	if err != nil {
		return nil, err
	}

	return deposits, nil
}

// CreateWithdrawal records a PENDING payout request. The balance is checked here
// but only debited when staff approve.
func (srv *walletService) CreateWithdrawal(ctx context.Context, userID uuid.UUID, input *usecase.CreateWithdrawalInput) (*entity.WithdrawalRequest, error) {
	currency, err := parseCurrency(input.Currency)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(input.Amount, "amount"); err != nil {
		return nil, err
	}
	source := entity.WalletSource(input.Source)
	if source == "" {
		source = entity.WalletSourceUser
	}
	if source != entity.WalletSourceUser && source != entity.WalletSourceShop {
		return nil, domainerrors.ErrValidationFailed.WithDetails("source must be USER or SHOP")
	}

	now := time.Now()
	withdrawal := &entity.WithdrawalRequest{
		ID:            uuid.New(),
		UserID:        userID,
		Source:        source,
		Amount:        input.Amount,
		Currency:      currency,
		WalletAddress: strings.TrimSpace(input.WalletAddress),
		Status:        entity.ReviewStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch source {
		case entity.WalletSourceShop:
			shop, err := repoFactory.NewShopRepository().FindByOwner(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrShopNotFound) {
					return errors.Wrap(domainerrors.ErrShopNotFound, "user has no shop")
				}

				return errors.Wrap(err, "failed to find shop")
			}
			if shop.Balance.LessThan(withdrawal.Amount) {
				return errors.Wrap(domainerrors.ErrInsufficientBalance, "shop balance too low")
			}
			shopID := shop.ID
			withdrawal.ShopID = &shopID
		default:
			user, err := findUser(ctx, repoFactory.NewUserRepository(), userID)
			if err != nil {
				return err
			}
			if user.Balance.LessThan(withdrawal.Amount) {
				return errors.Wrap(domainerrors.ErrInsufficientBalance, "balance too low")
			}
		}

		return errors.Wrap(repoFactory.NewWalletRepository().CreateWithdrawal(ctx, withdrawal), "failed to create withdrawal")
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Withdrawal requested",
		slog.Any("withdrawalID", withdrawal.ID), slog.String("source", string(source)), slog.String("amount", withdrawal.Amount.String()))

	return withdrawal, nil
}

// ListMyWithdrawals returns the caller's withdrawals, newest first.
func (srv *walletService) ListMyWithdrawals(ctx context.Context, userID uuid.UUID) ([]*entity.WithdrawalRequest, error) {
	withdrawals := []*entity.WithdrawalRequest{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWalletRepository().ListWithdrawalsByUser(ctx, userID)
		if found != nil {
			withdrawals = found
		}

		return errors.Wrap(err, "failed to list withdrawals")
	})
	if err != nil {
		return nil, err
	}

	return withdrawals, nil
}

// ListDeposits is the staff deposit queue.
func (srv *walletService) ListDeposits(ctx context.Context, query *usecase.ReviewListQuery) ([]*entity.DepositRequest, error) {
	status, err := parseReviewFilter(query.Status)
	if err != nil {
		return nil, err
	}

	deposits := []*entity.DepositRequest{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWalletRepository().ListDeposits(ctx, status)
		if found != nil {
			deposits = found
		}

		return errors.Wrap(err, "failed to list deposits")
	})
	if err != nil {
		return nil, err
	}

	return deposits, nil
}

// ReviewDeposit approves (crediting the user) or rejects a PENDING deposit.
func (srv *walletService) ReviewDeposit(ctx context.Context, reviewerID, depositID uuid.UUID, input *usecase.ReviewInput) (*entity.DepositRequest, error) {
	status, err := parseReviewAction(input.Action)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var deposit *entity.DepositRequest
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		walletRepo := repoFactory.NewWalletRepository()

		found, err := walletRepo.FindDepositByID(ctx, depositID)
		if err != nil {
			return mapWalletError(err)
		}
		if found.Status != entity.ReviewStatusPending {
			return errors.Wrap(domainerrors.ErrRequestAlreadyReviewed, "deposit already "+string(found.Status))
		}

		if err := walletRepo.ReviewDeposit(ctx, depositID, reviewUpdate(status, input.Note, reviewerID, now)); err != nil {
			return mapWalletError(err)
		}

		if status == entity.ReviewStatusApproved {
			if err := repoFactory.NewUserRepository().CreditBalance(ctx, found.UserID, found.Amount); err != nil {
				return mapBalanceError(err)
			}
		}

		found.Status = status
		found.ReviewNote = input.Note
		found.ReviewedBy = &reviewerID
		found.ReviewedAt = &now
		found.UpdatedAt = now
		deposit = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Deposit reviewed",
		slog.Any("depositID", deposit.ID), slog.String("status", string(status)), slog.Any("reviewerID", reviewerID))

	notifyBestEffort(ctx, srv.txManager, srv.logger, &entity.Notification{
		UserID:  deposit.UserID,
		Title:   "Deposit " + strings.ToLower(string(status)),
		Message: reviewMessage("deposit", deposit.Amount.StringFixed(2), deposit.Currency, status, input.Note),
		Type:    entity.NotificationTypeWallet,
		Link:    "/wallet",
	})

	return deposit, nil
}

// ListWithdrawals is the staff withdrawal queue.
func (srv *walletService) ListWithdrawals(ctx context.Context, query *usecase.ReviewListQuery) ([]*entity.WithdrawalRequest, error) {
	status, err := parseReviewFilter(query.Status)
	if err != nil {
		return nil, err
	}

	withdrawals := []*entity.WithdrawalRequest{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWalletRepository().ListWithdrawals(ctx, status)
		if found != nil {
			withdrawals = found
		}

		return errors.Wrap(err, "failed to list withdrawals")
	})
	if err != nil {
		return nil, err
	}

	return withdrawals, nil
}

// ReviewWithdrawal approves (debiting the source balance) or rejects a PENDING withdrawal.
// An approval the balance can no longer cover rolls back and leaves the request PENDING.
func (srv *walletService) ReviewWithdrawal(ctx context.Context, reviewerID, withdrawalID uuid.UUID, input *usecase.ReviewInput) (*entity.WithdrawalRequest, error) {
	status, err := parseReviewAction(input.Action)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var withdrawal *entity.WithdrawalRequest
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		walletRepo := repoFactory.NewWalletRepository()

		found, err := walletRepo.FindWithdrawalByID(ctx, withdrawalID)
		if err != nil {
			return mapWalletError(err)
		}
		if found.Status != entity.ReviewStatusPending {
			return errors.Wrap(domainerrors.ErrRequestAlreadyReviewed, "withdrawal already "+string(found.Status))
		}

		if err := walletRepo.ReviewWithdrawal(ctx, withdrawalID, reviewUpdate(status, input.Note, reviewerID, now)); err != nil {
			return mapWalletError(err)
		}

		if status == entity.ReviewStatusApproved {
			if err := debitWithdrawalSource(ctx, repoFactory, found); err != nil {
				return err
			}
		}

		found.Status = status
		found.ReviewNote = input.Note
		found.ReviewedBy = &reviewerID
		found.ReviewedAt = &now
		found.UpdatedAt = now
		withdrawal = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Withdrawal reviewed",
		slog.Any("withdrawalID", withdrawal.ID), slog.String("status", string(status)), slog.Any("reviewerID", reviewerID))

	notifyBestEffort(ctx, srv.txManager, srv.logger, &entity.Notification{
		UserID:  withdrawal.UserID,
		Title:   "Withdrawal " + strings.ToLower(string(status)),
		Message: reviewMessage("withdrawal", withdrawal.Amount.StringFixed(2), withdrawal.Currency, status, input.Note),
		Type:    entity.NotificationTypeWallet,
		Link:    "/wallet",
	})

	return withdrawal, nil
}

func debitWithdrawalSource(ctx context.Context, repoFactory repository.RepositoryFactory, withdrawal *entity.WithdrawalRequest) error {
	if withdrawal.Source == entity.WalletSourceShop {
		if withdrawal.ShopID == nil {
			return errors.Wrap(domainerrors.ErrShopNotFound, "shop withdrawal without shop")
		}

		return mapBalanceError(repoFactory.NewShopRepository().DebitBalance(ctx, *withdrawal.ShopID, withdrawal.Amount))
	}

	if err := repoFactory.NewUserRepository().DebitBalance(ctx, withdrawal.UserID, withdrawal.Amount); err != nil {
		return mapBalanceError(err)
	}

	return nil
}

func reviewMessage(kind, amount string, currency entity.Currency, status entity.ReviewStatus, note string) string {
	msg := fmt.Sprintf("Your %s of %s %s was %s.", kind, amount, currency, strings.ToLower(string(status)))
	if note != "" {
		msg += " Note: " + note
	}

	return msg
}

// ListCryptoAddresses returns every configured deposit address.
func (srv *walletService) ListCryptoAddresses(ctx context.Context) ([]*entity.CryptoAddress, error) {
	addresses := []*entity.CryptoAddress{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWalletRepository().ListCryptoAddresses(ctx, false)
		if found != nil {
			addresses = found
		}

		return errors.Wrap(err, "failed to list crypto addresses")
	})
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// SetCryptoAddress creates or replaces the deposit address of a currency.
func (srv *walletService) SetCryptoAddress(ctx context.Context, actorID uuid.UUID, rawCurrency string, input *usecase.CryptoAddressInput) (*entity.CryptoAddress, error) {
	currency, err := parseCurrency(rawCurrency)
	if err != nil {
		return nil, err
	}

	address := &entity.CryptoAddress{
		Currency:  currency,
		Address:   strings.TrimSpace(input.Address),
		Network:   strings.TrimSpace(input.Network),
		IsActive:  true,
		UpdatedBy: &actorID,
		UpdatedAt: time.Now(),
	}
	if input.IsActive != nil {
		address.IsActive = *input.IsActive
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewWalletRepository().UpsertCryptoAddress(ctx, address), "failed to save crypto address")
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Crypto address updated", slog.String("currency", string(currency)), slog.Any("actorID", actorID))

	return address, nil
}

// DeleteCryptoAddress removes the deposit address of a currency.
func (srv *walletService) DeleteCryptoAddress(ctx context.Context, rawCurrency string) error {
	currency, err := parseCurrency(rawCurrency)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapWalletError(repoFactory.NewWalletRepository().DeleteCryptoAddress(ctx, currency))
	})
}
