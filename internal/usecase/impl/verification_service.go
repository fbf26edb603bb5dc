package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxSlugAttempts bounds the numeric suffix search for a free shop slug.
const maxSlugAttempts = 100

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.VerificationUsecase {
	return &verificationService{txManager: txManager, logger: logger}
}

// GetMine returns the caller's latest verification and shop.
func (srv *verificationService) GetMine(ctx context.Context, userID uuid.UUID) (*usecase.VerificationStatus, error) {
	status := &usecase.VerificationStatus{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		verification, err := repoFactory.NewVerificationRepository().FindLatestByUser(ctx, userID)
		switch {
		case err == nil:
			status.Verification = verification
		case !errors.Is(err, repository.ErrVerificationNotFound):
			return errors.Wrap(err, "failed to find verification")
		}

		shop, err := repoFactory.NewShopRepository().FindByOwner(ctx, userID)
		switch {
		case err == nil:
			status.Shop = shop
		case !errors.Is(err, repository.ErrShopNotFound):
			return errors.Wrap(err, "failed to find shop")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// Submit files a verification. Users with a shop or a PENDING request cannot submit again.
func (srv *verificationService) Submit(ctx context.Context, userID uuid.UUID, input *usecase.SubmitVerificationInput) (*entity.ShopVerification, error) {
	now := time.Now()
	verification := &entity.ShopVerification{
		ID:           uuid.New(),
		UserID:       userID,
		ShopName:     strings.TrimSpace(input.ShopName),
		Description:  input.Description,
		ContactEmail: strings.TrimSpace(input.ContactEmail),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		DocumentURL:  strings.TrimSpace(input.DocumentURL),
		Status:       entity.ReviewStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewShopRepository().FindByOwner(ctx, userID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrShopAlreadyExists, "user already owns a shop")
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to find shop")
		}

		verificationRepo := repoFactory.NewVerificationRepository()
		pending, err := verificationRepo.HasPending(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to check pending verification")
		}
		if pending {
			return errors.Wrap(domainerrors.ErrVerificationPending, "verification already pending")
		}

		return errors.Wrap(verificationRepo.Create(ctx, verification), "failed to create verification")
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Shop verification submitted", slog.Any("verificationID", verification.ID), slog.Any("userID", userID))

	return verification, nil
}

// List is the staff verification queue.
func (srv *verificationService) List(ctx context.Context, query *usecase.ReviewListQuery) ([]*entity.ShopVerification, error) {
	status, err := parseReviewFilter(query.Status)
	if err != nil {
		return nil, err
	}

	verifications := []*entity.ShopVerification{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewVerificationRepository().List(ctx, status)
		if found != nil {
			verifications = found
		}

		return errors.Wrap(err, "failed to list verifications")
	})
	if err != nil {
		return nil, err
	}

	return verifications, nil
}

// uniqueShopSlug returns base, or base-2, base-3 ... whichever is free first.
func uniqueShopSlug(ctx context.Context, repo repository.ShopRepository, name string) (string, error) {
	base := util.Slugify(name)
	if base == "" {
		base = "shop"
	}

	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts+1; attempt++ {
		taken, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check shop slug")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	return "", errors.Wrap(domainerrors.ErrConflict, "no free shop slug for "+base)
}

// Review approves or rejects a PENDING verification. Approval opens an ACTIVE shop
// for the user and grants selling rights in the same transaction.
func (srv *verificationService) Review(ctx context.Context, reviewerID, verificationID uuid.UUID, input *usecase.ReviewInput) (*entity.ShopVerification, error) {
	status, err := parseReviewAction(input.Action)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var (
		verification *entity.ShopVerification
		shop         *entity.Shop
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		verificationRepo := repoFactory.NewVerificationRepository()

		found, err := verificationRepo.FindByID(ctx, verificationID)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationNotFound) {
				return errors.Wrap(domainerrors.ErrVerificationNotFound, "verification not found")
			}

			return errors.Wrap(err, "failed to find verification")
		}
		if found.Status != entity.ReviewStatusPending {
			return errors.Wrap(domainerrors.ErrRequestAlreadyReviewed, "verification already "+string(found.Status))
		}

		if err := verificationRepo.MarkReviewed(ctx, verificationID, reviewUpdate(status, input.Note, reviewerID, now)); err != nil {
			if errors.Is(err, repository.ErrAlreadyReviewed) {
				return errors.Wrap(domainerrors.ErrRequestAlreadyReviewed, "verification already reviewed")
			}

			return errors.Wrap(err, "failed to review verification")
		}

		found.Status = status
		found.ReviewNote = input.Note
		found.ReviewedBy = &reviewerID
		found.ReviewedAt = &now
		found.UpdatedAt = now
		verification = found

		if status != entity.ReviewStatusApproved {
			return nil
		}

		shop, err = openShop(ctx, repoFactory, found, now)
		if err != nil {
			return err
		}
		if err := verificationRepo.AttachShop(ctx, verificationID, shop.ID); err != nil {
			return errors.Wrap(err, "failed to link shop to verification")
		}
		found.ShopID = &shop.ID

		canSell := true
		if err := repoFactory.NewUserRepository().UpdateAccess(ctx, found.UserID, nil, &canSell); err != nil {
			return errors.Wrap(err, "failed to grant selling rights")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log := requestLogger(ctx, srv.logger)
	log.Info("Shop verification reviewed",
		slog.Any("verificationID", verificationID), slog.String("status", string(status)), slog.Any("reviewerID", reviewerID))

	notification := &entity.Notification{
		UserID:  verification.UserID,
		Title:   "Shop verification rejected",
		Message: "Your request to open \"" + verification.ShopName + "\" was rejected.",
		Type:    entity.NotificationTypeShop,
		Link:    "/shop/verification",
	}
	if input.Note != "" {
		notification.Message += " Note: " + input.Note
	}
	if shop != nil {
		notification.Title = "Shop approved"
		notification.Message = "Your shop \"" + shop.Name + "\" is open at /shops/" + shop.Slug + "."
		notification.Link = "/seller"
	}
	notifyBestEffort(ctx, srv.txManager, srv.logger, notification)

	return verification, nil
}

func openShop(ctx context.Context, repoFactory repository.RepositoryFactory, verification *entity.ShopVerification, now time.Time) (*entity.Shop, error) {
	shopRepo := repoFactory.NewShopRepository()

	if _, err := shopRepo.FindByOwner(ctx, verification.UserID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrShopAlreadyExists, "user already owns a shop")
	} else if !errors.Is(err, repository.ErrShopNotFound) {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	slug, err := uniqueShopSlug(ctx, shopRepo, verification.ShopName)
	if err != nil {
		return nil, err
	}

	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     verification.UserID,
		Name:        verification.ShopName,
		Slug:        slug,
		Description: verification.Description,
		Status:      entity.ShopStatusActive,
		Balance:     decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := shopRepo.Create(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrShopSlugTaken) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "shop slug taken concurrently")
		}

		return nil, errors.Wrap(err, "failed to create shop")
	}

	return shop, nil
}
