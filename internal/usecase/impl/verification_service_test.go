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

func TestVerificationService_Review_ApproveOpensShop(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewVerificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	reviewerID := uuid.New()
	userID := uuid.New()
	verificationID := uuid.New()

	var opened *entity.Shop
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		verificationRepo := mockRepo.NewMockVerificationRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewVerificationRepository().Return(verificationRepo)
		factory.EXPECT().NewShopRepository().Return(shopRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		verificationRepo.EXPECT().FindByID(ctx, verificationID).Return(&entity.ShopVerification{
			ID: verificationID, UserID: userID, ShopName: "Maison Étoile", Status: entity.ReviewStatusPending,
		}, nil)
		verificationRepo.EXPECT().MarkReviewed(ctx, verificationID, mock.MatchedBy(func(u repository.ReviewUpdate) bool {
			return u.Status == entity.ReviewStatusApproved && u.ReviewerID == reviewerID
		})).Return(nil)
		shopRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrShopNotFound)
		shopRepo.EXPECT().SlugExists(ctx, "maison-etoile").Return(true, nil)
		shopRepo.EXPECT().SlugExists(ctx, "maison-etoile-2").Return(false, nil)
		shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).
			Run(func(_ context.Context, s *entity.Shop) { opened = s }).
			Return(nil)
		verificationRepo.EXPECT().AttachShop(ctx, verificationID, mock.Anything).Return(nil)
		userRepo.EXPECT().UpdateAccess(ctx, userID, (*entity.Role)(nil), mock.MatchedBy(func(b *bool) bool { return b != nil && *b })).Return(nil)
	})
	var note *entity.Notification
	expectNotification(t, txManager, &note)

	verification, err := svc.Review(ctx, reviewerID, verificationID, &usecase.ReviewInput{Action: "approve"})

	require.NoError(t, err)
	require.NotNil(t, opened)
	assert.Equal(t, "maison-etoile-2", opened.Slug)
	assert.Equal(t, entity.ShopStatusActive, opened.Status)
	assert.Equal(t, userID, opened.OwnerID)
	assert.True(t, opened.Balance.IsZero())
	assert.Equal(t, entity.ReviewStatusApproved, verification.Status)
	require.NotNil(t, verification.ShopID)
	assert.Equal(t, opened.ID, *verification.ShopID)
	require.NotNil(t, note)
	assert.Equal(t, "/seller", note.Link)
}

func TestVerificationService_Review_RejectOpensNothing(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewVerificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	verificationID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		verificationRepo := mockRepo.NewMockVerificationRepository(t)
		factory.EXPECT().NewVerificationRepository().Return(verificationRepo)
		verificationRepo.EXPECT().FindByID(ctx, verificationID).Return(&entity.ShopVerification{
			ID: verificationID, UserID: uuid.New(), ShopName: "Nope", Status: entity.ReviewStatusPending,
		}, nil)
		verificationRepo.EXPECT().MarkReviewed(ctx, verificationID, mock.Anything).Return(nil)
	})
	var note *entity.Notification
	expectNotification(t, txManager, &note)

	verification, err := svc.Review(ctx, uuid.New(), verificationID, &usecase.ReviewInput{Action: "reject", Note: "blurry documents"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusRejected, verification.Status)
	assert.Nil(t, verification.ShopID)
	require.NotNil(t, note)
	assert.Contains(t, note.Message, "blurry documents")
}

func TestVerificationService_Review_AlreadyReviewed(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewVerificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	verificationID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		verificationRepo := mockRepo.NewMockVerificationRepository(t)
		factory.EXPECT().NewVerificationRepository().Return(verificationRepo)
		verificationRepo.EXPECT().FindByID(ctx, verificationID).Return(&entity.ShopVerification{
			ID: verificationID, Status: entity.ReviewStatusApproved,
		}, nil)
	})

	_, err := svc.Review(ctx, uuid.New(), verificationID, &usecase.ReviewInput{Action: "approve"})

	requireErrorCode(t, err, "REQUEST_ALREADY_REVIEWED")
}

func TestVerificationService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SubmitVerificationInput{ShopName: "Atelier", ContactEmail: "a@b.c"}

	t.Run("already owns a shop", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		svc := NewVerificationService(txManager, newDiscardLogger())
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			shopRepo := mockRepo.NewMockShopRepository(t)
			factory.EXPECT().NewShopRepository().Return(shopRepo)
			shopRepo.EXPECT().FindByOwner(ctx, userID).Return(&entity.Shop{ID: uuid.New()}, nil)
		})

		_, err := svc.Submit(ctx, userID, input)

		requireErrorCode(t, err, "SHOP_ALREADY_EXISTS")
	})

	t.Run("pending request exists", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		svc := NewVerificationService(txManager, newDiscardLogger())
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			shopRepo := mockRepo.NewMockShopRepository(t)
			verificationRepo := mockRepo.NewMockVerificationRepository(t)
			factory.EXPECT().NewShopRepository().Return(shopRepo)
			factory.EXPECT().NewVerificationRepository().Return(verificationRepo)
			shopRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrShopNotFound)
			verificationRepo.EXPECT().HasPending(ctx, userID).Return(true, nil)
		})

		_, err := svc.Submit(ctx, userID, input)

		requireErrorCode(t, err, "VERIFICATION_PENDING")
	})
}
