package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// walletRepository implements deposits, withdrawals and platform crypto addresses.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (repo *walletRepository) CreateDeposit(ctx context.Context, deposit *entity.DepositRequest) error {
	if deposit.ID == uuid.Nil {
		deposit.ID = uuid.New()
	}
	depositM := fromDepositDomain(deposit)

	if err := repo.db.WithContext(ctx).Create(depositM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create deposit request")
	}

	deposit.CreatedAt = depositM.CreatedAt
	deposit.UpdatedAt = depositM.UpdatedAt

	return nil
}

// FindDepositByID reads from the primary; review decisions must not act on a lagging replica.
func (repo *walletRepository) FindDepositByID(ctx context.Context, id uuid.UUID) (*entity.DepositRequest, error) {
	var depositM model.DepositRequestModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&depositM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDepositNotFound
		}

		return nil, errors.Wrap(err, "failed to find deposit request")
	}

	return toDepositDomain(&depositM), nil
}

func (repo *walletRepository) ListDepositsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DepositRequest, error) {
	return repo.listDeposits(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *walletRepository) ListDeposits(ctx context.Context, status *entity.ReviewStatus) ([]*entity.DepositRequest, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return repo.listDeposits(query)
}

func (repo *walletRepository) listDeposits(query *gorm.DB) ([]*entity.DepositRequest, error) {
	var depositModels []*model.DepositRequestModel
	if err := query.Order("created_at DESC").Find(&depositModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deposit requests")
	}

	deposits := make([]*entity.DepositRequest, 0, len(depositModels))
	for _, m := range depositModels {
		deposits = append(deposits, toDepositDomain(m))
	}

	return deposits, nil
}

func (repo *walletRepository) ReviewDeposit(ctx context.Context, id uuid.UUID, update repository.ReviewUpdate) error {
	return markReviewed(ctx, repo.db, &model.DepositRequestModel{}, id, update)
}

func (repo *walletRepository) CreateWithdrawal(ctx context.Context, withdrawal *entity.WithdrawalRequest) error {
	if withdrawal.ID == uuid.Nil {
		withdrawal.ID = uuid.New()
	}
	withdrawalM := fromWithdrawalDomain(withdrawal)

	if err := repo.db.WithContext(ctx).Create(withdrawalM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create withdrawal request")
	}

	withdrawal.CreatedAt = withdrawalM.CreatedAt
	withdrawal.UpdatedAt = withdrawalM.UpdatedAt

	return nil
}

func (repo *walletRepository) FindWithdrawalByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error) {
	var withdrawalM model.WithdrawalRequestModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&withdrawalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWithdrawalNotFound
		}

		return nil, errors.Wrap(err, "failed to find withdrawal request")
	}

	return toWithdrawalDomain(&withdrawalM), nil
}

func (repo *walletRepository) ListWithdrawalsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WithdrawalRequest, error) {
	return repo.listWithdrawals(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *walletRepository) ListWithdrawals(ctx context.Context, status *entity.ReviewStatus) ([]*entity.WithdrawalRequest, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return repo.listWithdrawals(query)
}

func (repo *walletRepository) listWithdrawals(query *gorm.DB) ([]*entity.WithdrawalRequest, error) {
	var withdrawalModels []*model.WithdrawalRequestModel
	if err := query.Order("created_at DESC").Find(&withdrawalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawal requests")
	}

	withdrawals := make([]*entity.WithdrawalRequest, 0, len(withdrawalModels))
	for _, m := range withdrawalModels {
		withdrawals = append(withdrawals, toWithdrawalDomain(m))
	}

	return withdrawals, nil
}

func (repo *walletRepository) ReviewWithdrawal(ctx context.Context, id uuid.UUID, update repository.ReviewUpdate) error {
	return markReviewed(ctx, repo.db, &model.WithdrawalRequestModel{}, id, update)
}

func (repo *walletRepository) ListCryptoAddresses(ctx context.Context, activeOnly bool) ([]*entity.CryptoAddress, error) {
	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var addressModels []*model.CryptoAddressModel
	if err := query.Order("currency ASC").Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list crypto addresses")
	}

	addresses := make([]*entity.CryptoAddress, 0, len(addressModels))
	for _, m := range addressModels {
		addresses = append(addresses, toCryptoAddressDomain(m))
	}

	return addresses, nil
}

func (repo *walletRepository) FindCryptoAddress(ctx context.Context, currency entity.Currency) (*entity.CryptoAddress, error) {
	var addressM model.CryptoAddressModel
	err := repo.db.WithContext(ctx).
		Where("currency = ?", string(currency)).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCryptoAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find crypto address")
	}

	return toCryptoAddressDomain(&addressM), nil
}

// UpsertCryptoAddress inserts or replaces the row for the address currency.
func (repo *walletRepository) UpsertCryptoAddress(ctx context.Context, address *entity.CryptoAddress) error {
	addressM := &model.CryptoAddressModel{
		Currency:  string(address.Currency),
		Address:   address.Address,
		Network:   address.Network,
		IsActive:  address.IsActive,
		UpdatedBy: address.UpdatedBy,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "currency"}},
			DoUpdates: clause.AssignmentColumns([]string{"address", "network", "is_active", "updated_by", "updated_at"}),
		}).
		Create(addressM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save crypto address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

func (repo *walletRepository) DeleteCryptoAddress(ctx context.Context, currency entity.Currency) error {
	result := repo.db.WithContext(ctx).
		Where("currency = ?", string(currency)).
		Delete(&model.CryptoAddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete crypto address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCryptoAddressNotFound
	}

	return nil
}

func toDepositDomain(data *model.DepositRequestModel) *entity.DepositRequest {
	return &entity.DepositRequest{
		ID:         data.ID,
		UserID:     data.UserID,
		Amount:     data.Amount,
		Currency:   entity.Currency(data.Currency),
		TxHash:     data.TxHash,
		Status:     entity.ReviewStatus(data.Status),
		ReviewNote: data.ReviewNote,
		ReviewedBy: data.ReviewedBy,
		ReviewedAt: data.ReviewedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDepositDomain(data *entity.DepositRequest) *model.DepositRequestModel {
	return &model.DepositRequestModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Amount:     data.Amount,
		Currency:   string(data.Currency),
		TxHash:     data.TxHash,
		Status:     string(data.Status),
		ReviewNote: data.ReviewNote,
		ReviewedBy: data.ReviewedBy,
		ReviewedAt: data.ReviewedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toWithdrawalDomain(data *model.WithdrawalRequestModel) *entity.WithdrawalRequest {
	return &entity.WithdrawalRequest{
		ID:            data.ID,
		UserID:        data.UserID,
		ShopID:        data.ShopID,
		Source:        entity.WalletSource(data.Source),
		Amount:        data.Amount,
		Currency:      entity.Currency(data.Currency),
		WalletAddress: data.WalletAddress,
		Status:        entity.ReviewStatus(data.Status),
		ReviewNote:    data.ReviewNote,
		ReviewedBy:    data.ReviewedBy,
		ReviewedAt:    data.ReviewedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromWithdrawalDomain(data *entity.WithdrawalRequest) *model.WithdrawalRequestModel {
	return &model.WithdrawalRequestModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ShopID:        data.ShopID,
		Source:        string(data.Source),
		Amount:        data.Amount,
		Currency:      string(data.Currency),
		WalletAddress: data.WalletAddress,
		Status:        string(data.Status),
		ReviewNote:    data.ReviewNote,
		ReviewedBy:    data.ReviewedBy,
		ReviewedAt:    data.ReviewedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toCryptoAddressDomain(data *model.CryptoAddressModel) *entity.CryptoAddress {
	return &entity.CryptoAddress{
		Currency:  entity.Currency(data.Currency),
		Address:   data.Address,
		Network:   data.Network,
		IsActive:  data.IsActive,
		UpdatedBy: data.UpdatedBy,
		UpdatedAt: data.UpdatedAt,
	}
}
