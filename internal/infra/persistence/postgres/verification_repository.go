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
)

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

func (repo *verificationRepository) Create(ctx context.Context, verification *entity.ShopVerification) error {
	if verification.ID == uuid.Nil {
		verification.ID = uuid.New()
	}
	verificationM := fromVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop verification")
	}

	verification.CreatedAt = verificationM.CreatedAt
	verification.UpdatedAt = verificationM.UpdatedAt

	return nil
}

func (repo *verificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopVerification, error) {
	var verificationM model.ShopVerificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop verification")
	}

	return toVerificationDomain(&verificationM), nil
}

func (repo *verificationRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.ShopVerification, error) {
	var verificationM model.ShopVerificationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&verificationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest shop verification")
	}

	return toVerificationDomain(&verificationM), nil
}

func (repo *verificationRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ShopVerificationModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.ReviewStatusPending)).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count pending verifications")
	}

	return count > 0, nil
}

func (repo *verificationRepository) List(ctx context.Context, status *entity.ReviewStatus) ([]*entity.ShopVerification, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var verificationModels []*model.ShopVerificationModel
	if err := query.Order("created_at DESC").Find(&verificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shop verifications")
	}

	verifications := make([]*entity.ShopVerification, 0, len(verificationModels))
	for _, m := range verificationModels {
		verifications = append(verifications, toVerificationDomain(m))
	}

	return verifications, nil
}

func (repo *verificationRepository) MarkReviewed(ctx context.Context, id uuid.UUID, update repository.ReviewUpdate) error {
	return markReviewed(ctx, repo.db, &model.ShopVerificationModel{}, id, update)
}

func (repo *verificationRepository) AttachShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopVerificationModel{}).
		Where("id = ?", id).
		Update("shop_id", shopID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to attach shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}

func toVerificationDomain(data *model.ShopVerificationModel) *entity.ShopVerification {
	return &entity.ShopVerification{
		ID:           data.ID,
		UserID:       data.UserID,
		ShopName:     data.ShopName,
		Description:  data.Description,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		DocumentURL:  data.DocumentURL,
		Status:       entity.ReviewStatus(data.Status),
		ReviewNote:   data.ReviewNote,
		ReviewedBy:   data.ReviewedBy,
		ReviewedAt:   data.ReviewedAt,
		ShopID:       data.ShopID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromVerificationDomain(data *entity.ShopVerification) *model.ShopVerificationModel {
	return &model.ShopVerificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ShopName:     data.ShopName,
		Description:  data.Description,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		DocumentURL:  data.DocumentURL,
		Status:       string(data.Status),
		ReviewNote:   data.ReviewNote,
		ReviewedBy:   data.ReviewedBy,
		ReviewedAt:   data.ReviewedAt,
		ShopID:       data.ShopID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
