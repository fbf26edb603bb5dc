package repository

import "context"

// TransactionManager runs use-case steps atomically. fn's error rolls the
// whole transaction back and is returned unchanged.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
// Repositories obtained from it must not be used after fn returns.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAddressRepository() AddressRepository
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
	NewFavoriteRepository() FavoriteRepository
	NewOrderRepository() OrderRepository
	NewShopRepository() ShopRepository
	NewVerificationRepository() VerificationRepository
	NewWalletRepository() WalletRepository
	NewNotificationRepository() NotificationRepository
	NewTicketRepository() TicketRepository
	NewSettingRepository() SettingRepository
}
