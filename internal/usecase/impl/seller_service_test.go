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

func expectSeller(t *testing.T, factory *mockRepo.MockRepositoryFactory, user *entity.User, shop *entity.Shop) *mockRepo.MockShopRepository {
	userRepo := mockRepo.NewMockUserRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewShopRepository().Return(shopRepo).Maybe()

	userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	if shop == nil {
		shopRepo.EXPECT().FindByOwner(mock.Anything, user.ID).Return(nil, repository.ErrShopNotFound).Maybe()
	} else {
		shopRepo.EXPECT().FindByOwner(mock.Anything, user.ID).Return(shop, nil).Maybe()
	}

	return shopRepo
}

func TestSellerService_GetShop_Gates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		user *entity.User
		shop *entity.Shop
		code string
	}{
		{
			name: "no selling rights",
			user: &entity.User{ID: uuid.New(), CanSell: false},
			code: "SELLER_NOT_ALLOWED",
		},
		{
			name: "no shop yet",
			user: &entity.User{ID: uuid.New(), CanSell: true},
			code: "SHOP_NOT_FOUND",
		},
		{
			name: "suspended shop",
			user: &entity.User{ID: uuid.New(), CanSell: true},
			shop: &entity.Shop{ID: uuid.New(), Status: entity.ShopStatusSuspended},
			code: "SHOP_NOT_ACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			svc := NewSellerService(txManager, newDiscardLogger())
			expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
				expectSeller(t, factory, tt.user, tt.shop)
			})

			_, err := svc.GetShop(ctx, tt.user.ID)

			requireErrorCode(t, err, tt.code)
		})
	}
}

func TestSellerService_ListOrders_ScopesToOwnItems(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewSellerService(txManager, newDiscardLogger())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), CanSell: true}
	shop := &entity.Shop{ID: uuid.New(), OwnerID: user.ID, Status: entity.ShopStatusActive}
	otherShop := uuid.New()

	order := &entity.Order{
		ID:    uuid.New(),
		Total: decimal.NewFromInt(130),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), ShopID: &shop.ID, Price: decimal.NewFromInt(15), Quantity: 2},
			{ProductID: uuid.New(), ShopID: &otherShop, Price: decimal.NewFromInt(100), Quantity: 1},
		},
	}

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		expectSeller(t, factory, user, shop)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		orderRepo.EXPECT().ListByShop(ctx, shop.ID).Return([]*entity.Order{order}, nil)
	})

	orders, err := svc.ListOrders(ctx, user.ID)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, &shop.ID, orders[0].Items[0].ShopID)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(30)))
}

func TestSellerService_UpdateOrderStatus_OnlyShipped(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewSellerService(txManager, newDiscardLogger())

	_, err := svc.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), &usecase.OrderStatusInput{Status: "DELIVERED"})

	requireErrorCode(t, err, "INVALID_STATUS_TRANSITION")
}

func TestSellerService_UpdateOrderStatus_ForeignOrder(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewSellerService(txManager, newDiscardLogger())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), CanSell: true}
	shop := &entity.Shop{ID: uuid.New(), OwnerID: user.ID, Status: entity.ShopStatusActive}
	orderID := uuid.New()
	otherShop := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		expectSeller(t, factory, user, shop)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
			ID:     orderID,
			Status: entity.OrderStatusPaid,
			Items:  []entity.OrderItem{{ShopID: &otherShop, Price: decimal.NewFromInt(1), Quantity: 1}},
		}, nil)
	})

	_, err := svc.UpdateOrderStatus(ctx, user.ID, orderID, &usecase.OrderStatusInput{Status: "SHIPPED"})

	requireErrorCode(t, err, "ORDER_NOT_FOUND")
}
