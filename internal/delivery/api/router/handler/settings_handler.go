package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves the site-wide settings.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler.
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// Public returns the maintenance flag visible to everyone.
func (h *SettingsHandler) Public(c echo.Context) error {
	settings, err := h.settingsUC.Public(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// AdminGet returns every setting.
func (h *SettingsHandler) AdminGet(c echo.Context) error {
	settings, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// AdminUpdate writes the settings and invalidates every instance's cache.
func (h *SettingsHandler) AdminUpdate(c echo.Context) error {
	actorID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateSettingsInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	settings, err := h.settingsUC.Update(c.Request().Context(), actorID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}
