package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			TxManager:    txManager,
			Hasher:       hasher,
			TokenService: tokens,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cretpass").Return("$2a$hash", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(repo)
		repo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(nil, repository.ErrUserNotFound)
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleUser && u.PasswordHash == "$2a$hash" && u.Balance.IsZero() && !u.CanSell && u.Locale == "en"
		})).Return(nil)
	})
	fx.tokens.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return("signed.jwt", nil)
	fx.tokens.EXPECT().TTL().Return(7 * 24 * time.Hour)

	session, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ann",
		Email:    "  Ann@Example.com ",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", session.Token)
	assert.Equal(t, "ann@example.com", session.User.Email)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestAuthService_Register_UnsupportedLocale(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "s3cretpass", Locale: "de",
	})

	requireErrorCode(t, err, "UNSUPPORTED_LOCALE")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("$2a$hash", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(repo)
		repo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "s3cretpass"})

	requireErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "$2a$hash", Role: entity.RoleUser}

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewUserRepository().Return(repo)
			repo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
		})

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		requireErrorCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewUserRepository().Return(repo)
			repo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		})
		fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

		requireErrorCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewUserRepository().Return(repo)
			repo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		})
		fx.hasher.EXPECT().Check("right", user.PasswordHash).Return(true)
		fx.tokens.EXPECT().Issue(user).Return("signed.jwt", nil)
		fx.tokens.EXPECT().TTL().Return(time.Hour)

		session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "right"})

		require.NoError(t, err)
		assert.Same(t, user, session.User)
	})
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.CurrentUser(ctx, userID)

	requireErrorCode(t, err, "UNAUTHENTICATED")
}
