package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves buyer checkout and the staff order desk.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// Checkout places an order paid from the caller's balance.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CheckoutInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListMine returns the caller's orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders})
}

// GetMine returns one of the caller's orders.
func (h *OrderHandler) GetMine(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetMine(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Cancel cancels one of the caller's pending or paid orders.
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// AdminList returns a page of all orders.
func (h *OrderHandler) AdminList(c echo.Context) error {
	var query usecase.OrderListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.orderUC.List(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// AdminUpdateStatus moves an order along its lifecycle.
func (h *OrderHandler) AdminUpdateStatus(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.OrderStatusInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
