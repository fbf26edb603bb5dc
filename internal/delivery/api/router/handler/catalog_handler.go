package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC      usecase.CatalogUsecase
	CatalogAdminUC usecase.CatalogAdminUsecase
	FavoriteUC     usecase.FavoriteUsecase
}

// CatalogHandler serves categories, products, shops and favorites.
type CatalogHandler struct {
	catalogUC      usecase.CatalogUsecase
	catalogAdminUC usecase.CatalogAdminUsecase
	favoriteUC     usecase.FavoriteUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC:      params.CatalogUC,
		catalogAdminUC: params.CatalogAdminUC,
		favoriteUC:     params.FavoriteUC,
	}
}

// ListCategories returns the active storefront categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": categories})
}

// ListProducts returns a page of published products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query usecase.ProductListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.catalogUC.ListProducts(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// SearchProducts matches published products by name and description.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	var query usecase.ProductSearchQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	products, err := h.catalogUC.SearchProducts(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"products": products})
}

// GetProduct returns one published product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetShop returns an active shop's page by slug.
func (h *CatalogHandler) GetShop(c echo.Context) error {
	view, err := h.catalogUC.GetShop(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ListFavorites returns the caller's wish list.
func (h *CatalogHandler) ListFavorites(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"favorites": favorites})
}

// AddFavorite puts a product on the caller's wish list.
func (h *CatalogHandler) AddFavorite(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.FavoriteInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.favoriteUC.Add(c.Request().Context(), userID, req.ProductID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, "Added to favorites")
}

// RemoveFavorite takes a product off the caller's wish list.
func (h *CatalogHandler) RemoveFavorite(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.favoriteUC.Remove(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminListCategories returns every category including inactive ones.
func (h *CatalogHandler) AdminListCategories(c echo.Context) error {
	categories, err := h.catalogAdminUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": categories})
}

// AdminCreateCategory adds a category.
func (h *CatalogHandler) AdminCreateCategory(c echo.Context) error {
	var req usecase.CategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogAdminUC.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// AdminUpdateCategory replaces a category.
func (h *CatalogHandler) AdminUpdateCategory(c echo.Context) error {
	categoryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.CategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogAdminUC.UpdateCategory(c.Request().Context(), categoryID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// AdminDeleteCategory removes a category.
func (h *CatalogHandler) AdminDeleteCategory(c echo.Context) error {
	categoryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogAdminUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminListProducts returns products in any status.
func (h *CatalogHandler) AdminListProducts(c echo.Context) error {
	var query usecase.ProductListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.catalogAdminUC.ListProducts(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// AdminCreateProduct adds a platform product.
func (h *CatalogHandler) AdminCreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogAdminUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// AdminUpdateProduct replaces a product.
func (h *CatalogHandler) AdminUpdateProduct(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogAdminUC.UpdateProduct(c.Request().Context(), productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// AdminDeleteProduct removes a product.
func (h *CatalogHandler) AdminDeleteProduct(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogAdminUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
