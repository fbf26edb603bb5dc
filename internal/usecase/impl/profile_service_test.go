package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	name, locale := "  Maria ", "RU"

	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewProfileService(txManager, newTestConfig(), newDiscardLogger())

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "M", Phone: "+1", Locale: "en"}, nil)
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Maria" && u.Locale == "ru" && u.Phone == "+1"
		})).Return(nil)
	})

	user, err := srv.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &name, Locale: &locale})

	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestProfileService_UpdateProfile_UnsupportedLocale(t *testing.T) {
	locale := "fr"
	srv := NewProfileService(mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

	_, err := srv.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Locale: &locale})

	requireErrorCode(t, err, "UNSUPPORTED_LOCALE")
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewProfileService(txManager, newTestConfig(), newDiscardLogger())

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := srv.GetProfile(ctx, userID)

	requireErrorCode(t, err, "USER_NOT_FOUND")
}
