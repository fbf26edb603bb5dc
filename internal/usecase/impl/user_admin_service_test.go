package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserAdminService(t *testing.T) (usecase.UserAdminUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)

	return NewUserAdminService(UserAdminServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}), txManager
}

func TestUserAdminService_UpdateAccess_NoSelfDemotion(t *testing.T) {
	svc, _ := createTestUserAdminService(t)
	adminID := uuid.New()
	role := "USER"

	_, err := svc.UpdateAccess(context.Background(), adminID, adminID, &usecase.UpdateAccessInput{Role: &role})

	requireErrorCode(t, err, "FORBIDDEN")
}

func TestUserAdminService_UpdateAccess_GrantsManager(t *testing.T) {
	svc, txManager := createTestUserAdminService(t)
	ctx := context.Background()
	userID := uuid.New()
	role := "MANAGER"
	manager := entity.RoleManager

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(repo)
		repo.EXPECT().UpdateAccess(ctx, userID, &manager, (*bool)(nil)).Return(nil)
		repo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleManager}, nil)
	})

	user, err := svc.UpdateAccess(ctx, uuid.New(), userID, &usecase.UpdateAccessInput{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, user.Role)
}

func TestUserAdminService_AdjustBalance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("negative amount debits", func(t *testing.T) {
		svc, txManager := createTestUserAdminService(t)
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewUserRepository().Return(repo)
			repo.EXPECT().DebitBalance(ctx, userID, decimal.NewFromInt(15)).Return(nil)
			repo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Balance: decimal.NewFromInt(5)}, nil)
		})
		expectNotification(t, txManager, nil)

		user, err := svc.AdjustBalance(ctx, uuid.New(), userID, &usecase.BalanceAdjustmentInput{Amount: decimal.NewFromInt(-15), Reason: "chargeback"})

		require.NoError(t, err)
		assert.True(t, user.Balance.Equal(decimal.NewFromInt(5)))
	})

	t.Run("debit below zero refused", func(t *testing.T) {
		svc, txManager := createTestUserAdminService(t)
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewUserRepository().Return(repo)
			repo.EXPECT().DebitBalance(ctx, userID, decimal.NewFromInt(500)).Return(repository.ErrInsufficientBalance)
		})

		_, err := svc.AdjustBalance(ctx, uuid.New(), userID, &usecase.BalanceAdjustmentInput{Amount: decimal.NewFromInt(-500)})

		requireErrorCode(t, err, "INSUFFICIENT_BALANCE")
	})

	t.Run("zero refused", func(t *testing.T) {
		svc, _ := createTestUserAdminService(t)

		_, err := svc.AdjustBalance(ctx, uuid.New(), userID, &usecase.BalanceAdjustmentInput{Amount: decimal.Zero})

		requireErrorCode(t, err, "INVALID_AMOUNT")
	})
}
