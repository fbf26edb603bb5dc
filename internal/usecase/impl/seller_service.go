package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sellerProductLimit caps the seller dashboard listing.
const sellerProductLimit = 500

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SellerUsecase {
	return &sellerService{txManager: txManager, logger: logger}
}

// requireActiveShop resolves the caller's shop, refusing users without selling rights
// and shops that are not ACTIVE.
func requireActiveShop(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.Shop, error) {
	user, err := findUser(ctx, repoFactory.NewUserRepository(), userID)
	if err != nil {
		return nil, err
	}
	if !user.CanSell {
		return nil, errors.Wrap(domainerrors.ErrSellerNotAllowed, "user cannot sell")
	}

	shop, err := repoFactory.NewShopRepository().FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "user has no shop")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}
	if !shop.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrShopNotActive, "shop is "+string(shop.Status))
	}

	return shop, nil
}

// findShopProduct loads a product and hides products of other shops.
func findShopProduct(ctx context.Context, repo repository.ProductRepository, shopID, productID uuid.UUID) (*entity.Product, error) {
	product, err := findProduct(ctx, repo, productID)
	if err != nil {
		return nil, err
	}
	if product.ShopID == nil || *product.ShopID != shopID {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product belongs to another shop")
	}

	return product, nil
}

// GetShop returns the caller's active shop.
func (srv *sellerService) GetShop(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := requireActiveShop(ctx, repoFactory, userID)
		shop = found

		return err
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// UpdateShop changes the shop's presentation. The slug is fixed once issued.
func (srv *sellerService) UpdateShop(ctx context.Context, userID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.LogoURL != nil {
			found.LogoURL = strings.TrimSpace(*input.LogoURL)
		}
		found.UpdatedAt = time.Now()

		if err := repoFactory.NewShopRepository().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// ListProducts returns every product of the caller's shop in any status.
func (srv *sellerService) ListProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	products := []*entity.Product{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		found, _, err := repoFactory.NewProductRepository().List(ctx, repository.ProductFilter{
			ShopID: &shop.ID,
			Limit:  sellerProductLimit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list shop products")
		}
		if found != nil {
			products = found
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// CreateProduct adds a product owned by the caller's shop.
func (srv *sellerService) CreateProduct(ctx context.Context, userID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		shopID := shop.ID
		product = newProduct(input, &shopID)

		return mapProductWriteError(repoFactory.NewProductRepository().Create(ctx, product))
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Seller product created", slog.Any("productID", product.ID), slog.Any("shopID", product.ShopID))

	return product, nil
}

// UpdateProduct replaces one of the shop's products.
func (srv *sellerService) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		productRepo := repoFactory.NewProductRepository()

		found, err := findShopProduct(ctx, productRepo, shop.ID, productID)
		if err != nil {
			return err
		}
		applyProductInput(found, input, time.Now())
		if err := productRepo.Update(ctx, found); err != nil {
			return mapProductWriteError(err)
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes one of the shop's products.
func (srv *sellerService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		productRepo := repoFactory.NewProductRepository()

		if _, err := findShopProduct(ctx, productRepo, shop.ID, productID); err != nil {
			return err
		}

		return mapProductWriteError(productRepo.Delete(ctx, productID))
	})
}

// scopeOrderToShop keeps only the shop's own lines and totals them.
func scopeOrderToShop(order *entity.Order, shopID uuid.UUID) {
	order.Items = order.ItemsForShop(shopID)
	order.Total = order.ShopTotals()[shopID]
}

// ListOrders returns orders that contain the shop's items, with other shops' lines removed.
func (srv *sellerService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders := []*entity.Order{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		found, err := repoFactory.NewOrderRepository().ListByShop(ctx, shop.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list shop orders")
		}
		for _, order := range found {
			scopeOrderToShop(order, shop.ID)
			orders = append(orders, order)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus lets a seller mark a PAID order containing their items as SHIPPED.
func (srv *sellerService) UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, input *usecase.OrderStatusInput) (*entity.Order, error) {
	if entity.OrderStatus(input.Status) != entity.OrderStatusShipped {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("sellers can only mark orders as SHIPPED")
	}

	var (
		order  *entity.Order
		shopID uuid.UUID
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := requireActiveShop(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		shopID = shop.ID
		found, err := findOrder(ctx, repoFactory.NewOrderRepository(), orderID)
		if err != nil {
			return err
		}
		if len(found.ItemsForShop(shop.ID)) == 0 {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order has no items from this shop")
		}
		if err := transitionOrder(ctx, repoFactory, found, entity.OrderStatusShipped, time.Now()); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyOrderStatus(ctx, srv.txManager, srv.logger, order)
	scopeOrderToShop(order, shopID)

	return order, nil
}
