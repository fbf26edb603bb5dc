// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute hands fn repositories bound to one transaction. GORM commits when fn
// returns nil and rolls back on an error or a panic, which it re-raises.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.db == nil {
		return domainerrors.ErrDatabaseNotConfigured
	}

	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories builds every repository on the same *gorm.DB transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f txRepositories) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

func (f txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositories) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

func (f txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f txRepositories) NewShopRepository() repository.ShopRepository {
	return NewShopRepository(f.tx)
}

func (f txRepositories) NewVerificationRepository() repository.VerificationRepository {
	return NewVerificationRepository(f.tx)
}

func (f txRepositories) NewWalletRepository() repository.WalletRepository {
	return NewWalletRepository(f.tx)
}

func (f txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

func (f txRepositories) NewTicketRepository() repository.TicketRepository {
	return NewTicketRepository(f.tx)
}

func (f txRepositories) NewSettingRepository() repository.SettingRepository {
	return NewSettingRepository(f.tx)
}
