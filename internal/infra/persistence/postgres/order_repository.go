package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order header and its item snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	order.Items = toOrderItemDomains(orderM.Items)

	return nil
}

// FindByID reads from the primary so status checks see the latest transition.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := paginate(query, filter.Offset, filter.Limit).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

// ListByShop selects orders through the order_items.shop_id index.
func (repo *orderRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error) {
	sub := repo.db.Model(&model.OrderItemModel{}).
		Select("order_id").
		Where("shop_id = ?", shopID)

	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id IN (?)", sub).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by shop")
	}

	return toOrderDomains(orderModels), nil
}

// TransitionStatus is a compare-and-set on the status column.
func (repo *orderRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.OrderStatus, next entity.OrderStatus, at time.Time) error {
	fromValues := make([]string, 0, len(from))
	for _, s := range from {
		fromValues = append(fromValues, string(s))
	}

	updates := map[string]any{"status": string(next)}
	switch next {
	case entity.OrderStatusPaid:
		updates["paid_at"] = at
	case entity.OrderStatusShipped:
		updates["shipped_at"] = at
	case entity.OrderStatusDelivered:
		updates["delivered_at"] = at
	case entity.OrderStatusCancelled:
		updates["cancelled_at"] = at
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status IN ?", id, fromValues).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusConflict
	}

	return nil
}

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toOrderDomain(m))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          entity.OrderStatus(data.Status),
		Total:           data.Total,
		AddressID:       data.AddressID,
		ShippingAddress: data.ShippingAddress,
		Note:            data.Note,
		Items:           toOrderItemDomains(data.Items),
		PaidAt:          data.PaidAt,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CancelledAt:     data.CancelledAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderItemDomains(models []model.OrderItemModel) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(models))
	for _, m := range models {
		items = append(items, entity.OrderItem{
			ID:           m.ID,
			OrderID:      m.OrderID,
			ProductID:    m.ProductID,
			ShopID:       m.ShopID,
			ProductName:  m.ProductName,
			ProductImage: m.ProductImage,
			Price:        m.Price,
			Quantity:     m.Quantity,
		})
	}

	return items
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		items = append(items, model.OrderItemModel{
			ID:           id,
			OrderID:      data.ID,
			ProductID:    item.ProductID,
			ShopID:       item.ShopID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Price:        item.Price,
			Quantity:     item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          string(data.Status),
		Total:           data.Total,
		AddressID:       data.AddressID,
		ShippingAddress: data.ShippingAddress,
		Note:            data.Note,
		Items:           items,
		PaidAt:          data.PaidAt,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CancelledAt:     data.CancelledAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
