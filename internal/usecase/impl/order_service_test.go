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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return orderServiceFixtures{
		service: NewOrderService(OrderServiceParams{
			TxManager: txManager,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
	}
}

func publishedProduct(name, price string, stock int, shopID *uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:     uuid.New(),
		ShopID: shopID,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
		Status: entity.ProductStatusPublished,
		Images: []entity.ProductImage{{URL: "/uploads/products/" + name + ".jpg", IsPrimary: true}},
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	shopID := uuid.New()
	dress := publishedProduct("dress", "49.90", 5, &shopID)
	scarf := publishedProduct("scarf", "10.05", 2, nil)

	var created *entity.Order
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{dress.ID, scarf.ID}).Return([]*entity.Product{scarf, dress}, nil)
		addressRepo.EXPECT().FindByID(ctx, addressID, userID).Return(&entity.Address{
			ID: addressID, UserID: userID, RecipientName: "Ann", Street: "Rue 1", City: "Paris", Country: "FR",
		}, nil)
		productRepo.EXPECT().DecrementStock(ctx, dress.ID, 3).Return(nil).Once()
		productRepo.EXPECT().DecrementStock(ctx, scarf.ID, 1).Return(nil).Once()
		userRepo.EXPECT().DebitBalance(ctx, userID, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("159.75"))
		})).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, o *entity.Order) { created = o }).
			Return(nil)
	})
	var note *entity.Notification
	expectNotification(t, fx.txManager, &note)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		Items: []usecase.CheckoutLine{
			{ProductID: dress.ID, Quantity: 2},
			{ProductID: scarf.ID, Quantity: 1},
			{ProductID: dress.ID, Quantity: 1},
		},
		AddressID: &addressID,
	})

	require.NoError(t, err)
	assert.Same(t, created, order)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("159.75")))
	assert.Equal(t, "Ann, Rue 1, Paris, FR", order.ShippingAddress)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, &shopID, order.Items[0].ShopID)
	assert.Equal(t, "/uploads/products/dress.jpg", order.Items[0].ProductImage)
	assert.Nil(t, order.Items[1].ShopID)
	require.NotNil(t, note)
	assert.Equal(t, "/orders/"+order.ID.String(), note.Link)
}

func TestOrderService_Checkout_Failures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{})

		requireErrorCode(t, err, "ORDER_EMPTY")
	})

	t.Run("draft product", func(t *testing.T) {
		fx := createTestOrderService(t)
		draft := publishedProduct("coat", "100", 3, nil)
		draft.Status = entity.ProductStatusDraft
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			productRepo := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{draft.ID}).Return([]*entity.Product{draft}, nil)
		})

		_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
			Items: []usecase.CheckoutLine{{ProductID: draft.ID, Quantity: 1}},
		})

		requireErrorCode(t, err, "PRODUCT_UNAVAILABLE")
	})

	t.Run("stock taken concurrently", func(t *testing.T) {
		fx := createTestOrderService(t)
		shoes := publishedProduct("shoes", "80", 1, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			productRepo := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{shoes.ID}).Return([]*entity.Product{shoes}, nil)
			productRepo.EXPECT().DecrementStock(ctx, shoes.ID, 1).Return(repository.ErrInsufficientStock)
		})

		_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
			Items: []usecase.CheckoutLine{{ProductID: shoes.ID, Quantity: 1}},
		})

		requireErrorCode(t, err, "INSUFFICIENT_STOCK")
	})

	t.Run("balance too low", func(t *testing.T) {
		fx := createTestOrderService(t)
		bag := publishedProduct("bag", "300", 4, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			productRepo := mockRepo.NewMockProductRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewUserRepository().Return(userRepo)
			productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{bag.ID}).Return([]*entity.Product{bag}, nil)
			productRepo.EXPECT().DecrementStock(ctx, bag.ID, 1).Return(nil)
			userRepo.EXPECT().DebitBalance(ctx, userID, mock.Anything).Return(repository.ErrInsufficientBalance)
		})

		_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
			Items: []usecase.CheckoutLine{{ProductID: bag.ID, Quantity: 1}},
		})

		requireErrorCode(t, err, "INSUFFICIENT_BALANCE")
	})
}

func TestOrderService_Cancel_RestocksAndRefunds(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.OrderStatusPaid,
		Total:  decimal.NewFromInt(60),
		Items:  []entity.OrderItem{{ProductID: productID, Price: decimal.NewFromInt(20), Quantity: 3}},
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().TransitionStatus(ctx, order.ID, []entity.OrderStatus{entity.OrderStatusPaid}, entity.OrderStatusCancelled, mock.Anything).Return(nil)
		productRepo.EXPECT().IncrementStock(ctx, productID, 3).Return(nil)
		userRepo.EXPECT().CreditBalance(ctx, userID, decimal.NewFromInt(60)).Return(nil)
	})

	cancelled, err := fx.service.Cancel(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestOrderService_Cancel_OtherUsersOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPaid}, nil)
	})

	_, err := fx.service.Cancel(ctx, uuid.New(), orderID)

	requireErrorCode(t, err, "ORDER_NOT_FOUND")
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("delivered credits each shop", func(t *testing.T) {
		fx := createTestOrderService(t)
		shopA, shopB := uuid.New(), uuid.New()
		order := &entity.Order{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Status: entity.OrderStatusShipped,
			Items: []entity.OrderItem{
				{ProductID: uuid.New(), ShopID: &shopA, Price: decimal.NewFromInt(10), Quantity: 2},
				{ProductID: uuid.New(), ShopID: &shopB, Price: decimal.NewFromInt(5), Quantity: 1},
				{ProductID: uuid.New(), ShopID: &shopA, Price: decimal.NewFromInt(1), Quantity: 1},
				{ProductID: uuid.New(), Price: decimal.NewFromInt(99), Quantity: 1},
			},
		}

		credited := map[uuid.UUID]decimal.Decimal{}
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			shopRepo := mockRepo.NewMockShopRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewShopRepository().Return(shopRepo)

			orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			orderRepo.EXPECT().TransitionStatus(ctx, order.ID, []entity.OrderStatus{entity.OrderStatusShipped}, entity.OrderStatusDelivered, mock.Anything).Return(nil)
			shopRepo.EXPECT().CreditBalance(ctx, mock.Anything, mock.Anything).
				Run(func(_ context.Context, id uuid.UUID, amount decimal.Decimal) { credited[id] = amount }).
				Return(nil).
				Times(2)
		})
		expectNotification(t, fx.txManager, nil)

		updated, err := fx.service.UpdateStatus(ctx, order.ID, &usecase.OrderStatusInput{Status: "DELIVERED"})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
		assert.True(t, credited[shopA].Equal(decimal.NewFromInt(21)))
		assert.True(t, credited[shopB].Equal(decimal.NewFromInt(5)))
	})

	t.Run("delivered cannot go back", func(t *testing.T) {
		fx := createTestOrderService(t)
		orderID := uuid.New()
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)
		})

		_, err := fx.service.UpdateStatus(ctx, orderID, &usecase.OrderStatusInput{Status: "SHIPPED"})

		requireErrorCode(t, err, "INVALID_STATUS_TRANSITION")
	})

	t.Run("concurrent transition loses", func(t *testing.T) {
		fx := createTestOrderService(t)
		orderID := uuid.New()
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid}, nil)
			orderRepo.EXPECT().TransitionStatus(ctx, orderID, mock.Anything, entity.OrderStatusShipped, mock.Anything).Return(repository.ErrOrderStatusConflict)
		})

		_, err := fx.service.UpdateStatus(ctx, orderID, &usecase.OrderStatusInput{Status: "SHIPPED"})

		requireErrorCode(t, err, "INVALID_STATUS_TRANSITION")
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(ctx, uuid.New(), &usecase.OrderStatusInput{Status: "LOST"})

		requireErrorCode(t, err, "VALIDATION_FAILED")
	})
}
