package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// markReviewed flips a PENDING review row to its outcome. The status predicate makes the
// flip a compare-and-set: only one concurrent reviewer can match the row.
func markReviewed(ctx context.Context, db *gorm.DB, table any, id uuid.UUID, update repository.ReviewUpdate) error {
	result := db.WithContext(ctx).
		Model(table).
		Where("id = ? AND status = ?", id, string(entity.ReviewStatusPending)).
		Updates(map[string]any{
			"status":      string(update.Status),
			"review_note": update.Note,
			"reviewed_by": update.ReviewerID,
			"reviewed_at": update.ReviewedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlreadyReviewed
	}

	return nil
}
