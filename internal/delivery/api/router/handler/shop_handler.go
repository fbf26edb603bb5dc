package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	SellerUC       usecase.SellerUsecase
}

// ShopHandler serves shop verification and the seller dashboard.
type ShopHandler struct {
	verificationUC usecase.VerificationUsecase
	sellerUC       usecase.SellerUsecase
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		verificationUC: params.VerificationUC,
		sellerUC:       params.SellerUC,
	}
}

// GetVerification returns the caller's latest verification request and shop.
func (h *ShopHandler) GetVerification(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	status, err := h.verificationUC.GetMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// SubmitVerification asks staff to open a shop for the caller.
func (h *ShopHandler) SubmitVerification(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.SubmitVerificationInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	verification, err := h.verificationUC.Submit(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, verification)
}

// AdminListVerifications returns the verification review queue.
func (h *ShopHandler) AdminListVerifications(c echo.Context) error {
	var query usecase.ReviewListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	verifications, err := h.verificationUC.List(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"verifications": verifications})
}

// AdminReviewVerification approves or rejects a verification request.
func (h *ShopHandler) AdminReviewVerification(c echo.Context) error {
	reviewerID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	verificationID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	verification, err := h.verificationUC.Review(c.Request().Context(), reviewerID, verificationID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, verification)
}

// SellerGetShop returns the caller's shop.
func (h *ShopHandler) SellerGetShop(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	shop, err := h.sellerUC.GetShop(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// SellerUpdateShop edits the caller's shop profile.
func (h *ShopHandler) SellerUpdateShop(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateShopInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.sellerUC.UpdateShop(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// SellerListProducts returns the products of the caller's shop.
func (h *ShopHandler) SellerListProducts(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	products, err := h.sellerUC.ListProducts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"products": products})
}

// SellerCreateProduct adds a product to the caller's shop.
func (h *ShopHandler) SellerCreateProduct(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.sellerUC.CreateProduct(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// SellerUpdateProduct replaces a product of the caller's shop.
func (h *ShopHandler) SellerUpdateProduct(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.sellerUC.UpdateProduct(c.Request().Context(), userID, productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// SellerDeleteProduct removes a product of the caller's shop.
func (h *ShopHandler) SellerDeleteProduct(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.sellerUC.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SellerListOrders returns orders with items from the caller's shop.
func (h *ShopHandler) SellerListOrders(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.sellerUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders})
}

// SellerUpdateOrderStatus marks an order as shipped.
func (h *ShopHandler) SellerUpdateOrderStatus(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.OrderStatusInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.sellerUC.UpdateOrderStatus(c.Request().Context(), userID, orderID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
