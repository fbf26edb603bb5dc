package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	pageSize    int
	maxPageSize int
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:   params.TxManager,
		pageSize:    24,
		maxPageSize: 100,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.DefaultPageSize > 0 {
			srv.pageSize = params.Config.Catalog.DefaultPageSize
		}
		if params.Config.Catalog.MaxPageSize > 0 {
			srv.maxPageSize = params.Config.Catalog.MaxPageSize
		}
	}

	return srv
}

// mergeCheckoutLines folds repeated products into one line, keeping first-seen order.
func mergeCheckoutLines(lines []usecase.CheckoutLine) ([]usecase.CheckoutLine, []uuid.UUID) {
	merged := make([]usecase.CheckoutLine, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
		ids = append(ids, line.ProductID)
	}

	return merged, ids
}

// Checkout turns cart lines into a PAID order: it snapshots each product, reserves
// stock with conditional decrements and debits the buyer's balance atomically.
// Any failure rolls the whole order back.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	lines, productIDs := mergeCheckoutLines(input.Items)
	if len(lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrOrderEmpty, "checkout without items")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
	}

	log := requestLogger(ctx, srv.logger)
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    entity.OrderStatusPaid,
		AddressID: input.AddressID,
		Note:      strings.TrimSpace(input.Note),
		PaidAt:    &now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		products, err := productRepo.FindByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load products")
		}
		byID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		if input.AddressID != nil {
			address, err := findAddress(ctx, repoFactory.NewAddressRepository(), *input.AddressID, userID)
			if err != nil {
				return err
			}
			order.ShippingAddress = address.FullAddress()
		}

		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, ok := byID[line.ProductID]
			if !ok {
				return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", line.ProductID)
			}
			if !product.IsPublished() {
				return errors.Wrapf(domainerrors.ErrProductUnavailable, "product %s is not for sale", product.ID)
			}
			if product.Stock < line.Quantity {
				return insufficientStock(product)
			}

			item := entity.OrderItem{
				ID:           uuid.New(),
				OrderID:      order.ID,
				ProductID:    product.ID,
				ShopID:       product.ShopID,
				ProductName:  product.Name,
				ProductImage: product.PrimaryImage(),
				Price:        product.Price,
				Quantity:     line.Quantity,
			}
			total = total.Add(item.Subtotal())
			items = append(items, item)
		}
		order.Items = items
		order.Total = total

		for _, line := range lines {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return insufficientStock(byID[line.ProductID])
				}

				return errors.Wrap(err, "failed to reserve stock")
			}
		}

		if err := repoFactory.NewUserRepository().DebitBalance(ctx, userID, total); err != nil {
			return mapBalanceError(err)
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		log.Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	log.Info("Order placed", slog.Any("orderID", order.ID), slog.String("total", order.Total.String()))

	notifyBestEffort(ctx, srv.txManager, srv.logger, &entity.Notification{
		UserID:  userID,
		Title:   "Order placed",
		Message: fmt.Sprintf("Your order for %s has been paid.", order.Total.StringFixed(2)),
		Type:    entity.NotificationTypeOrder,
		Link:    "/orders/" + order.ID.String(),
	})

	return order, nil
}

func insufficientStock(product *entity.Product) error {
	return domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("not enough stock for %s", product.Name))
}

// mapBalanceError translates balance mutation failures.
func mapBalanceError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInsufficientBalance):
		return errors.Wrap(domainerrors.ErrInsufficientBalance, "balance too low")
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
	case errors.Is(err, repository.ErrShopNotFound):
		return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
	default:
		return errors.Wrap(err, "failed to update balance")
	}
}

func findOrder(ctx context.Context, repo repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// transitionOrder moves order to next and applies the money and stock side effects:
// cancelling restocks every line and refunds a paid order, delivering credits each shop
// with the subtotal of its own items. The status flip is conditional on the status we
// read, so two concurrent transitions cannot both apply their side effects.
func transitionOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus, now time.Time) error {
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
	}

	err := repoFactory.NewOrderRepository().TransitionStatus(ctx, order.ID, []entity.OrderStatus{order.Status}, next, now)
	if err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("order status changed concurrently")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	switch next {
	case entity.OrderStatusCancelled:
		productRepo := repoFactory.NewProductRepository()
		for _, item := range order.Items {
			err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(err, "failed to restock product")
			}
		}
		if order.Status == entity.OrderStatusPaid {
			if err := repoFactory.NewUserRepository().CreditBalance(ctx, order.UserID, order.Total); err != nil {
				return mapBalanceError(err)
			}
		}
		order.CancelledAt = &now
	case entity.OrderStatusDelivered:
		shopRepo := repoFactory.NewShopRepository()
		for shopID, amount := range order.ShopTotals() {
			if err := shopRepo.CreditBalance(ctx, shopID, amount); err != nil {
				return mapBalanceError(err)
			}
		}
		order.DeliveredAt = &now
	case entity.OrderStatusShipped:
		order.ShippedAt = &now
	case entity.OrderStatusPaid:
		order.PaidAt = &now
	}

	order.Status = next
	order.UpdatedAt = now

	return nil
}

func orderStatusMessage(status entity.OrderStatus) string {
	switch status {
	case entity.OrderStatusPaid:
		return "Your order has been marked as paid."
	case entity.OrderStatusShipped:
		return "Your order is on its way."
	case entity.OrderStatusDelivered:
		return "Your order has been delivered."
	case entity.OrderStatusCancelled:
		return "Your order has been cancelled."
	default:
		return "Your order status changed."
	}
}

func notifyOrderStatus(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger, order *entity.Order) {
	notifyBestEffort(ctx, txManager, logger, &entity.Notification{
		UserID:  order.UserID,
		Title:   "Order " + strings.ToLower(string(order.Status)),
		Message: orderStatusMessage(order.Status),
		Type:    entity.NotificationTypeOrder,
		Link:    "/orders/" + order.ID.String(),
	})
}

// ListMine returns the caller's orders, newest first.
func (srv *orderService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders := []*entity.Order{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOrderRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		if found != nil {
			orders = found
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GetMine returns one of the caller's orders. Other users' orders read as not found.
func (srv *orderService) GetMine(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOrder(ctx, repoFactory.NewOrderRepository(), orderID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Cancel lets a buyer cancel their own PENDING or PAID order.
func (srv *orderService) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOrder(ctx, repoFactory.NewOrderRepository(), orderID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
		}
		if err := transitionOrder(ctx, repoFactory, found, entity.OrderStatusCancelled, time.Now()); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Order cancelled by buyer", slog.Any("orderID", order.ID))

	return order, nil
}

// List returns one page of all orders for staff.
func (srv *orderService) List(ctx context.Context, query *usecase.OrderListQuery) (*usecase.OrderPage, error) {
	filter := repository.OrderFilter{}
	if query.Status != "" {
		status := entity.OrderStatus(query.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + query.Status)
		}
		filter.Status = &status
	}
	page, offset, limit := query.Normalize(srv.pageSize, srv.maxPageSize)
	filter.Offset = offset
	filter.Limit = limit

	result := &usecase.OrderPage{Orders: []*entity.Order{}, Page: page, Limit: limit}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := repoFactory.NewOrderRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		if orders != nil {
			result.Orders = orders
		}
		result.Total = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateStatus is the staff transition desk.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, input *usecase.OrderStatusInput) (*entity.Order, error) {
	next := entity.OrderStatus(input.Status)
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + input.Status)
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOrder(ctx, repoFactory.NewOrderRepository(), orderID)
		if err != nil {
			return err
		}
		if err := transitionOrder(ctx, repoFactory, found, next, time.Now()); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Order status updated", slog.Any("orderID", order.ID), slog.String("status", string(order.Status)))
	notifyOrderStatus(ctx, srv.txManager, srv.logger, order)

	return order, nil
}
