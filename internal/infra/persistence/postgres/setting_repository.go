package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// Get reads the single settings row, returning defaults before the first save.
func (repo *settingRepository) Get(ctx context.Context) (*entity.SiteSettings, error) {
	var settingsM model.SiteSettingsModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", model.SiteSettingsID).
		First(&settingsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.SiteSettings{}, nil
		}

		return nil, errors.Wrap(err, "failed to load site settings")
	}

	return &entity.SiteSettings{
		MaintenanceMode:    settingsM.MaintenanceMode,
		MaintenanceMessage: settingsM.MaintenanceMessage,
		SupportEmail:       settingsM.SupportEmail,
		UpdatedBy:          settingsM.UpdatedBy,
		UpdatedAt:          settingsM.UpdatedAt,
	}, nil
}

// Save upserts the settings row.
func (repo *settingRepository) Save(ctx context.Context, settings *entity.SiteSettings) error {
	settingsM := &model.SiteSettingsModel{
		ID:                 model.SiteSettingsID,
		MaintenanceMode:    settings.MaintenanceMode,
		MaintenanceMessage: settings.MaintenanceMessage,
		SupportEmail:       settings.SupportEmail,
		UpdatedBy:          settings.UpdatedBy,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"maintenance_mode", "maintenance_message", "support_email", "updated_by", "updated_at"}),
		}).
		Create(settingsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save site settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}
