package impl

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productSlug uses the requested slug or derives one from the name with a short unique tail.
func productSlug(requested, name string, id uuid.UUID) string {
	if slug := util.Slugify(requested); slug != "" {
		return slug
	}
	tail := strings.ReplaceAll(id.String(), "-", "")[:6]
	if base := util.Slugify(name); base != "" {
		return base + "-" + tail
	}

	return "product-" + tail
}

func validateProductInput(input *usecase.ProductInput) error {
	if err := requirePositive(input.Price, "price"); err != nil {
		return err
	}
	if input.CompareAtPrice != nil && input.CompareAtPrice.IsNegative() {
		return domainerrors.ErrInvalidAmount.WithDetails("compareAtPrice must not be negative")
	}
	if input.Status != "" && !entity.ProductStatus(input.Status).IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown product status " + input.Status)
	}

	return nil
}

// applyProductInput copies input onto product, rebuilding the image list so exactly one image is primary.
func applyProductInput(product *entity.Product, input *usecase.ProductInput, now time.Time) {
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Slug = productSlug(input.Slug, input.Name, product.ID)
	product.Description = input.Description
	product.ShortDesc = input.ShortDesc
	product.Price = input.Price
	product.CompareAtPrice = input.CompareAtPrice
	product.Stock = input.Stock
	product.Status = entity.ProductStatus(input.Status)
	if product.Status == "" {
		product.Status = entity.ProductStatusDraft
	}

	images := make([]entity.ProductImage, 0, len(input.Images))
	primarySeen := false
	for i, img := range input.Images {
		isPrimary := img.IsPrimary && !primarySeen
		primarySeen = primarySeen || isPrimary
		images = append(images, entity.ProductImage{
			ID:        uuid.New(),
			ProductID: product.ID,
			URL:       strings.TrimSpace(img.URL),
			SortOrder: i,
			IsPrimary: isPrimary,
		})
	}
	if !primarySeen && len(images) > 0 {
		images[0].IsPrimary = true
	}
	product.Images = images
	product.UpdatedAt = now
}

func newProduct(input *usecase.ProductInput, shopID *uuid.UUID) *entity.Product {
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New(),
		ShopID:    shopID,
		CreatedAt: now,
	}
	applyProductInput(product, input, now)

	return product
}

// mapProductWriteError translates repository errors raised by product writes.
func mapProductWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrProductSlugTaken):
		return errors.Wrap(domainerrors.ErrProductSlugTaken, "product slug taken")
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
	default:
		return errors.Wrap(err, "failed to save product")
	}
}

func findProduct(ctx context.Context, repo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
