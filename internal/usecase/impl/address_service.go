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

// addressService implements the AddressUsecase interface.
// A user has at most one default address; setting a new default clears the old one
// inside the same transaction.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AddressUsecase {
	return &addressService{txManager: txManager, logger: logger}
}

func findAddress(ctx context.Context, repo repository.AddressRepository, addressID, userID uuid.UUID) (*entity.Address, error) {
	address, err := repo.FindByID(ctx, addressID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}

// List returns the caller's addresses.
func (srv *addressService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addresses []*entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAddressRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		addresses = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// Create adds an address. The first address a user saves becomes the default.
func (srv *addressService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	now := time.Now()
	address := &entity.Address{
		ID:            uuid.New(),
		UserID:        userID,
		Label:         strings.TrimSpace(input.Label),
		RecipientName: strings.TrimSpace(input.RecipientName),
		Phone:         strings.TrimSpace(input.Phone),
		Country:       strings.TrimSpace(input.Country),
		City:          strings.TrimSpace(input.City),
		Street:        strings.TrimSpace(input.Street),
		PostalCode:    strings.TrimSpace(input.PostalCode),
		IsDefault:     input.IsDefault,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		existing, err := addressRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		if len(existing) == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Debug("Address created", slog.Any("addressID", address.ID), slog.Bool("default", address.IsDefault))

	return address, nil
}

// Update applies a partial update to one of the caller's addresses.
func (srv *addressService) Update(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	var address *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		found, err := findAddress(ctx, addressRepo, addressID, userID)
		if err != nil {
			return err
		}

		applyAddressUpdate(found, input)

		if input.IsDefault != nil && *input.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
			found.IsDefault = true
		} else if input.IsDefault != nil {
			found.IsDefault = false
		}
		found.UpdatedAt = time.Now()

		if err := addressRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		address = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func applyAddressUpdate(address *entity.Address, input *usecase.UpdateAddressInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&address.Label, input.Label)
	set(&address.RecipientName, input.RecipientName)
	set(&address.Phone, input.Phone)
	set(&address.Country, input.Country)
	set(&address.City, input.City)
	set(&address.Street, input.Street)
	set(&address.PostalCode, input.PostalCode)
}

// Delete removes an address. When the default goes, the most recent remaining address takes over.
func (srv *addressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		found, err := findAddress(ctx, addressRepo, addressID, userID)
		if err != nil {
			return err
		}

		if err := addressRepo.Delete(ctx, addressID, userID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to delete address")
		}

		if !found.IsDefault {
			return nil
		}

		remaining, err := addressRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		next := remaining[0]
		next.IsDefault = true
		next.UpdatedAt = time.Now()

		return errors.Wrap(addressRepo.Update(ctx, next), "failed to promote default address")
	})
}
