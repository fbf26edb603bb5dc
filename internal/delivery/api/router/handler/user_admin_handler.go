package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserAdminHandlerParams holds dependencies for UserAdminHandler, injected by Fx.
type UserAdminHandlerParams struct {
	fx.In

	UserAdminUC usecase.UserAdminUsecase
}

// UserAdminHandler serves the staff user directory.
type UserAdminHandler struct {
	userAdminUC usecase.UserAdminUsecase
}

// NewUserAdminHandler is the constructor for UserAdminHandler.
func NewUserAdminHandler(params UserAdminHandlerParams) *UserAdminHandler {
	return &UserAdminHandler{userAdminUC: params.UserAdminUC}
}

// List returns a page of users.
func (h *UserAdminHandler) List(c echo.Context) error {
	var query usecase.UserListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.userAdminUC.List(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// UpdateAccess changes a user's role or selling permission.
func (h *UserAdminHandler) UpdateAccess(c echo.Context) error {
	actorID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateAccessInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userAdminUC.UpdateAccess(c.Request().Context(), actorID, userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// AdjustBalance credits or debits a user's balance.
func (h *UserAdminHandler) AdjustBalance(c echo.Context) error {
	actorID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.BalanceAdjustmentInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userAdminUC.AdjustBalance(c.Request().Context(), actorID, userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
