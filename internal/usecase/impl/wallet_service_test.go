package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// walletServiceFixtures holds all test dependencies for wallet service tests.
type walletServiceFixtures struct {
	service   usecase.WalletUsecase
	txManager *mockRepo.MockTransactionManager
	qr        *mockService.MockQRCodeService
}

func createTestWalletService(t *testing.T) walletServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qr := mockService.NewMockQRCodeService(t)

	return walletServiceFixtures{
		service: NewWalletService(WalletServiceParams{
			TxManager: txManager,
			QRService: qr,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		qr:        qr,
	}
}

// ledger simulates the conditional UPDATEs the postgres repositories run.
type ledger struct {
	deposit *entity.DepositRequest
	balance decimal.Decimal
	credits int
}

func (l *ledger) wire(t *testing.T, factory *mockRepo.MockRepositoryFactory) {
	walletRepo := mockRepo.NewMockWalletRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewWalletRepository().Return(walletRepo)
	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()

	walletRepo.EXPECT().FindDepositByID(mock.Anything, l.deposit.ID).RunAndReturn(
		func(context.Context, uuid.UUID) (*entity.DepositRequest, error) {
			snapshot := *l.deposit

			return &snapshot, nil
		})
	walletRepo.EXPECT().ReviewDeposit(mock.Anything, l.deposit.ID, mock.Anything).RunAndReturn(
		func(_ context.Context, _ uuid.UUID, update repository.ReviewUpdate) error {
			if l.deposit.Status != entity.ReviewStatusPending {
				return repository.ErrAlreadyReviewed
			}
			l.deposit.Status = update.Status

			return nil
		}).Maybe()
	userRepo.EXPECT().CreditBalance(mock.Anything, l.deposit.UserID, mock.Anything).RunAndReturn(
		func(_ context.Context, _ uuid.UUID, amount decimal.Decimal) error {
			l.balance = l.balance.Add(amount)
			l.credits++

			return nil
		}).Maybe()
}

func TestWalletService_ReviewDeposit_ApproveCreditsOnce(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	reviewerID := uuid.New()
	book := &ledger{
		deposit: &entity.DepositRequest{
			ID:       uuid.New(),
			UserID:   uuid.New(),
			Amount:   decimal.RequireFromString("50.00"),
			Currency: entity.CurrencyUSDTTRC20,
			Status:   entity.ReviewStatusPending,
		},
		balance: decimal.RequireFromString("10.00"),
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) { book.wire(t, factory) })
	var note *entity.Notification
	expectNotification(t, fx.txManager, &note)

	deposit, err := fx.service.ReviewDeposit(ctx, reviewerID, book.deposit.ID, &usecase.ReviewInput{Action: "approve"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, deposit.Status)
	assert.Equal(t, &reviewerID, deposit.ReviewedBy)
	assert.True(t, book.balance.Equal(decimal.RequireFromString("60.00")))
	require.NotNil(t, note)
	assert.Equal(t, book.deposit.UserID, note.UserID)
	assert.Equal(t, entity.NotificationTypeWallet, note.Type)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) { book.wire(t, factory) })

	_, err = fx.service.ReviewDeposit(ctx, reviewerID, book.deposit.ID, &usecase.ReviewInput{Action: "approve"})

	requireErrorCode(t, err, "REQUEST_ALREADY_REVIEWED")
	assert.Equal(t, 1, book.credits)
	assert.True(t, book.balance.Equal(decimal.RequireFromString("60.00")))
}

func TestWalletService_ReviewDeposit_ConcurrentReviewLosesRace(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	depositID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)

		walletRepo.EXPECT().FindDepositByID(ctx, depositID).Return(&entity.DepositRequest{
			ID: depositID, UserID: uuid.New(), Amount: decimal.NewFromInt(5), Status: entity.ReviewStatusPending,
		}, nil)
		walletRepo.EXPECT().ReviewDeposit(ctx, depositID, mock.Anything).Return(repository.ErrAlreadyReviewed)
	})

	_, err := fx.service.ReviewDeposit(ctx, uuid.New(), depositID, &usecase.ReviewInput{Action: "approve"})

	requireErrorCode(t, err, "REQUEST_ALREADY_REVIEWED")
}

func TestWalletService_ReviewDeposit_RejectDoesNotCredit(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	depositID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)

		walletRepo.EXPECT().FindDepositByID(ctx, depositID).Return(&entity.DepositRequest{
			ID: depositID, UserID: uuid.New(), Amount: decimal.NewFromInt(5), Currency: entity.CurrencyBTC, Status: entity.ReviewStatusPending,
		}, nil)
		walletRepo.EXPECT().ReviewDeposit(ctx, depositID, mock.MatchedBy(func(u repository.ReviewUpdate) bool {
			return u.Status == entity.ReviewStatusRejected && u.Note == "no such tx"
		})).Return(nil)
	})
	expectNotification(t, fx.txManager, nil)

	deposit, err := fx.service.ReviewDeposit(ctx, uuid.New(), depositID, &usecase.ReviewInput{Action: "reject", Note: "no such tx"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusRejected, deposit.Status)
	assert.Equal(t, "no such tx", deposit.ReviewNote)
}

func TestWalletService_ReviewDeposit_UnknownAction(t *testing.T) {
	fx := createTestWalletService(t)

	_, err := fx.service.ReviewDeposit(context.Background(), uuid.New(), uuid.New(), &usecase.ReviewInput{Action: "maybe"})

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestWalletService_ReviewDeposit_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	depositID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		walletRepo.EXPECT().FindDepositByID(ctx, depositID).Return(&entity.DepositRequest{
			ID: depositID, UserID: uuid.New(), Amount: decimal.NewFromInt(5), Currency: entity.CurrencyBTC, Status: entity.ReviewStatusPending,
		}, nil)
		walletRepo.EXPECT().ReviewDeposit(ctx, depositID, mock.Anything).Return(nil)
		userRepo.EXPECT().CreditBalance(ctx, mock.Anything, mock.Anything).Return(nil)
	})
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	deposit, err := fx.service.ReviewDeposit(ctx, uuid.New(), depositID, &usecase.ReviewInput{Action: "approve"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, deposit.Status)
}

func TestWalletService_CreateDeposit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unsupported currency", func(t *testing.T) {
		fx := createTestWalletService(t)

		_, err := fx.service.CreateDeposit(ctx, userID, &usecase.CreateDepositInput{
			Amount: decimal.NewFromInt(10), Currency: "DOGE", TxHash: "0xabc",
		})

		requireErrorCode(t, err, "UNSUPPORTED_CURRENCY")
	})

	t.Run("non-positive amount", func(t *testing.T) {
		fx := createTestWalletService(t)

		_, err := fx.service.CreateDeposit(ctx, userID, &usecase.CreateDepositInput{
			Amount: decimal.Zero, Currency: "BTC", TxHash: "0xabc",
		})

		requireErrorCode(t, err, "INVALID_AMOUNT")
	})

	t.Run("inactive address", func(t *testing.T) {
		fx := createTestWalletService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			walletRepo := mockRepo.NewMockWalletRepository(t)
			factory.EXPECT().NewWalletRepository().Return(walletRepo)
			walletRepo.EXPECT().FindCryptoAddress(ctx, entity.CurrencyBTC).Return(&entity.CryptoAddress{Currency: entity.CurrencyBTC, IsActive: false}, nil)
		})

		_, err := fx.service.CreateDeposit(ctx, userID, &usecase.CreateDepositInput{
			Amount: decimal.NewFromInt(10), Currency: "BTC", TxHash: "0xabc",
		})

		requireErrorCode(t, err, "CRYPTO_ADDRESS_NOT_FOUND")
	})

	t.Run("pending deposit recorded", func(t *testing.T) {
		fx := createTestWalletService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			walletRepo := mockRepo.NewMockWalletRepository(t)
			factory.EXPECT().NewWalletRepository().Return(walletRepo)
			walletRepo.EXPECT().FindCryptoAddress(ctx, entity.CurrencyETH).Return(&entity.CryptoAddress{Currency: entity.CurrencyETH, IsActive: true}, nil)
			walletRepo.EXPECT().CreateDeposit(ctx, mock.MatchedBy(func(d *entity.DepositRequest) bool {
				return d.UserID == userID && d.Status == entity.ReviewStatusPending && d.TxHash == "0xabc"
			})).Return(nil)
		})

		deposit, err := fx.service.CreateDeposit(ctx, userID, &usecase.CreateDepositInput{
			Amount: decimal.NewFromInt(10), Currency: "ETH", TxHash: " 0xabc ",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.CurrencyETH, deposit.Currency)
	})
}

func TestWalletService_CreateWithdrawal_InsufficientBalance(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Balance: decimal.NewFromInt(5)}, nil)
	})

	_, err := fx.service.CreateWithdrawal(ctx, userID, &usecase.CreateWithdrawalInput{
		Amount: decimal.NewFromInt(20), Currency: "TON", WalletAddress: "UQxyz",
	})

	requireErrorCode(t, err, "INSUFFICIENT_BALANCE")
}

func TestWalletService_CreateWithdrawal_ShopSource(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	userID := uuid.New()
	shopID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		walletRepo := mockRepo.NewMockWalletRepository(t)
		factory.EXPECT().NewShopRepository().Return(shopRepo)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)

		shopRepo.EXPECT().FindByOwner(ctx, userID).Return(&entity.Shop{ID: shopID, OwnerID: userID, Balance: decimal.NewFromInt(100)}, nil)
		walletRepo.EXPECT().CreateWithdrawal(ctx, mock.AnythingOfType("*entity.WithdrawalRequest")).Return(nil)
	})

	withdrawal, err := fx.service.CreateWithdrawal(ctx, userID, &usecase.CreateWithdrawalInput{
		Amount: decimal.NewFromInt(40), Currency: "LTC", WalletAddress: "ltc1q", Source: "SHOP",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.WalletSourceShop, withdrawal.Source)
	require.NotNil(t, withdrawal.ShopID)
	assert.Equal(t, shopID, *withdrawal.ShopID)
}

func TestWalletService_ReviewWithdrawal_BalanceGoneRollsBack(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	withdrawalID := uuid.New()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		walletRepo.EXPECT().FindWithdrawalByID(ctx, withdrawalID).Return(&entity.WithdrawalRequest{
			ID: withdrawalID, UserID: userID, Source: entity.WalletSourceUser, Amount: decimal.NewFromInt(30), Status: entity.ReviewStatusPending,
		}, nil)
		walletRepo.EXPECT().ReviewWithdrawal(ctx, withdrawalID, mock.Anything).Return(nil)
		userRepo.EXPECT().DebitBalance(ctx, userID, decimal.NewFromInt(30)).Return(repository.ErrInsufficientBalance)
	})

	_, err := fx.service.ReviewWithdrawal(ctx, uuid.New(), withdrawalID, &usecase.ReviewInput{Action: "approve"})

	requireErrorCode(t, err, "INSUFFICIENT_BALANCE")
}

func TestWalletService_ReviewWithdrawal_ApproveDebitsShop(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	withdrawalID := uuid.New()
	shopID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)
		factory.EXPECT().NewShopRepository().Return(shopRepo)

		walletRepo.EXPECT().FindWithdrawalByID(ctx, withdrawalID).Return(&entity.WithdrawalRequest{
			ID: withdrawalID, UserID: uuid.New(), ShopID: &shopID, Source: entity.WalletSourceShop,
			Amount: decimal.NewFromInt(30), Currency: entity.CurrencyBTC, Status: entity.ReviewStatusPending,
		}, nil)
		walletRepo.EXPECT().ReviewWithdrawal(ctx, withdrawalID, mock.Anything).Return(nil)
		shopRepo.EXPECT().DebitBalance(ctx, shopID, decimal.NewFromInt(30)).Return(nil)
	})
	expectNotification(t, fx.txManager, nil)

	withdrawal, err := fx.service.ReviewWithdrawal(ctx, uuid.New(), withdrawalID, &usecase.ReviewInput{Action: "approve"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, withdrawal.Status)
}

func TestWalletService_DepositQR(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	address := &entity.CryptoAddress{Currency: entity.CurrencyBTC, Address: "bc1qxyz", IsActive: true}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		factory.EXPECT().NewWalletRepository().Return(walletRepo)
		walletRepo.EXPECT().FindCryptoAddress(ctx, entity.CurrencyBTC).Return(address, nil)
	})
	fx.qr.EXPECT().GenerateDepositQR(address).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.DepositQR(ctx, "BTC")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
