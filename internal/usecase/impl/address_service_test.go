package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service   usecase.AddressUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return addressServiceFixtures{
		service:   NewAddressService(txManager, newDiscardLogger()),
		txManager: txManager,
	}
}

// fakeAddressBook is a tiny in-memory stand-in so the single-default rule can be checked end to end.
type fakeAddressBook struct {
	rows []*entity.Address
}

func (b *fakeAddressBook) wire(t *testing.T, factory *mockRepo.MockRepositoryFactory) {
	repo := mockRepo.NewMockAddressRepository(t)
	factory.EXPECT().NewAddressRepository().Return(repo)

	repo.EXPECT().ListByUser(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, userID uuid.UUID) ([]*entity.Address, error) {
			var out []*entity.Address
			for _, a := range b.rows {
				if a.UserID == userID {
					out = append(out, a)
				}
			}

			return out, nil
		}).Maybe()
	repo.EXPECT().ClearDefault(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, userID uuid.UUID) error {
			for _, a := range b.rows {
				if a.UserID == userID {
					a.IsDefault = false
				}
			}

			return nil
		}).Maybe()
	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, a *entity.Address) error {
			b.rows = append(b.rows, a)

			return nil
		}).Maybe()
}

func (b *fakeAddressBook) defaults(userID uuid.UUID) int {
	n := 0
	for _, a := range b.rows {
		if a.UserID == userID && a.IsDefault {
			n++
		}
	}

	return n
}

func TestAddressService_Create_DefaultIsExclusive(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	book := &fakeAddressBook{}

	for i := 0; i < 3; i++ {
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) { book.wire(t, factory) })

		address, err := fx.service.Create(ctx, userID, &usecase.CreateAddressInput{
			RecipientName: "Ann",
			Phone:         "+100",
			Country:       "FR",
			City:          "Paris",
			Street:        "Rue 1",
			IsDefault:     true,
		})

		require.NoError(t, err)
		assert.True(t, address.IsDefault)
		assert.Equal(t, 1, book.defaults(userID))
	}

	assert.Len(t, book.rows, 3)
	assert.True(t, book.rows[2].IsDefault)
}

func TestAddressService_Create_FirstAddressBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()
	book := &fakeAddressBook{}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) { book.wire(t, factory) })

	address, err := fx.service.Create(context.Background(), userID, &usecase.CreateAddressInput{
		RecipientName: "Ann", Phone: "1", Country: "FR", City: "Paris", Street: "Rue 1",
	})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_Create_NonDefaultKeepsExisting(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()
	existing := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true}
	book := &fakeAddressBook{rows: []*entity.Address{existing}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) { book.wire(t, factory) })

	address, err := fx.service.Create(context.Background(), userID, &usecase.CreateAddressInput{
		RecipientName: "Bob", Phone: "1", Country: "DE", City: "Berlin", Street: "Str 2",
	})

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
	assert.True(t, existing.IsDefault)
	assert.Equal(t, 1, book.defaults(userID))
}

func TestAddressService_Update_SetDefaultClearsOthers(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	makeDefault := true

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(repo)

		repo.EXPECT().FindByID(ctx, addressID, userID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		repo.EXPECT().ClearDefault(ctx, userID).Return(nil).Once()
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(a *entity.Address) bool { return a.IsDefault })).Return(nil)
	})

	address, err := fx.service.Update(ctx, userID, addressID, &usecase.UpdateAddressInput{IsDefault: &makeDefault})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_Update_NotFound(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, addressID, userID).Return(nil, repository.ErrAddressNotFound)
	})

	_, err := fx.service.Update(ctx, userID, addressID, &usecase.UpdateAddressInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_Delete_PromotesNextDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	remaining := &entity.Address{ID: uuid.New(), UserID: userID}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(repo)

		repo.EXPECT().FindByID(ctx, addressID, userID).Return(&entity.Address{ID: addressID, UserID: userID, IsDefault: true}, nil)
		repo.EXPECT().Delete(ctx, addressID, userID).Return(nil)
		repo.EXPECT().ListByUser(ctx, userID).Return([]*entity.Address{remaining}, nil)
		repo.EXPECT().Update(ctx, remaining).Return(nil)
	})

	err := fx.service.Delete(ctx, userID, addressID)

	require.NoError(t, err)
	assert.True(t, remaining.IsDefault)
}
