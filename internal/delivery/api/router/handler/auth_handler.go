package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// AuthHandler serves registration, login and the session cookie.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	authMW *middleware.AuthMiddleware
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		authMW: params.AuthMiddleware,
		logger: params.Logger,
	}
}

// Register opens an account and signs the caller in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.authMW.SetSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusCreated, output)
}

// Login checks credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.authMW.SetSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, output)
}

// Logout clears the session cookie. It succeeds for anonymous callers too.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authMW.ClearSessionCookie(c)

	return response.Message(c, http.StatusOK, "Logged out")
}

// Me returns the signed-in account, or a null user for anonymous callers.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Success(c, http.StatusOK, map[string]any{"user": nil})
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Info("Clearing session of a deleted account", slog.String("user_id", claims.UserID.String()))
			h.authMW.ClearSessionCookie(c)

			return response.Success(c, http.StatusOK, map[string]any{"user": nil})
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": user})
}
