package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AddressUC usecase.AddressUsecase
}

// AccountHandler serves the caller's profile and shipping addresses.
type AccountHandler struct {
	profileUC usecase.ProfileUsecase
	addressUC usecase.AddressUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		profileUC: params.ProfileUC,
		addressUC: params.AddressUC,
	}
}

// GetProfile returns the caller's account.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile changes the caller's editable profile fields.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ListAddresses returns the caller's addresses, default first.
func (h *AccountHandler) ListAddresses(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"addresses": addresses})
}

// CreateAddress adds a shipping address.
func (h *AccountHandler) CreateAddress(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateAddressInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// UpdateAddress edits one of the caller's addresses.
func (h *AccountHandler) UpdateAddress(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	addressID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateAddressInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Update(c.Request().Context(), userID, addressID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress removes one of the caller's addresses.
func (h *AccountHandler) DeleteAddress(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	addressID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressUC.Delete(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
