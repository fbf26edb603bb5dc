package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
}

// WalletHandler serves balances, deposits, withdrawals and the staff review queues.
type WalletHandler struct {
	walletUC usecase.WalletUsecase
}

// NewWalletHandler is the constructor for WalletHandler.
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{walletUC: params.WalletUC}
}

// Overview returns the caller's balances and the active deposit addresses.
func (h *WalletHandler) Overview(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	overview, err := h.walletUC.Overview(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// DepositQR renders the deposit address of a currency as a PNG.
func (h *WalletHandler) DepositQR(c echo.Context) error {
	png, err := h.walletUC.DepositQR(c.Request().Context(), strings.ToUpper(c.Param("currency")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateDeposit reports a transfer for staff review.
func (h *WalletHandler) CreateDeposit(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateDepositInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	deposit, err := h.walletUC.CreateDeposit(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, deposit)
}

// ListMyDeposits returns the caller's deposit requests.
func (h *WalletHandler) ListMyDeposits(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	deposits, err := h.walletUC.ListMyDeposits(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deposits": deposits})
}

// CreateWithdrawal asks staff to pay out part of a balance.
func (h *WalletHandler) CreateWithdrawal(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateWithdrawalInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	withdrawal, err := h.walletUC.CreateWithdrawal(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, withdrawal)
}

// ListMyWithdrawals returns the caller's withdrawal requests.
func (h *WalletHandler) ListMyWithdrawals(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	withdrawals, err := h.walletUC.ListMyWithdrawals(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"withdrawals": withdrawals})
}

// AdminListDeposits returns the deposit review queue.
func (h *WalletHandler) AdminListDeposits(c echo.Context) error {
	var query usecase.ReviewListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	deposits, err := h.walletUC.ListDeposits(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deposits": deposits})
}

// AdminReviewDeposit approves or rejects a pending deposit.
func (h *WalletHandler) AdminReviewDeposit(c echo.Context) error {
	reviewerID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	depositID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	deposit, err := h.walletUC.ReviewDeposit(c.Request().Context(), reviewerID, depositID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deposit)
}

// AdminListWithdrawals returns the withdrawal review queue.
func (h *WalletHandler) AdminListWithdrawals(c echo.Context) error {
	var query usecase.ReviewListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	withdrawals, err := h.walletUC.ListWithdrawals(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"withdrawals": withdrawals})
}

// AdminReviewWithdrawal approves or rejects a pending withdrawal.
func (h *WalletHandler) AdminReviewWithdrawal(c echo.Context) error {
	reviewerID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	withdrawalID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	withdrawal, err := h.walletUC.ReviewWithdrawal(c.Request().Context(), reviewerID, withdrawalID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, withdrawal)
}

// AdminListCryptoAddresses returns every configured deposit address.
func (h *WalletHandler) AdminListCryptoAddresses(c echo.Context) error {
	addresses, err := h.walletUC.ListCryptoAddresses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"addresses": addresses})
}

// AdminSetCryptoAddress creates or replaces the deposit address of a currency.
func (h *WalletHandler) AdminSetCryptoAddress(c echo.Context) error {
	actorID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CryptoAddressInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.walletUC.SetCryptoAddress(c.Request().Context(), actorID, strings.ToUpper(c.Param("currency")), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// AdminDeleteCryptoAddress removes the deposit address of a currency.
func (h *WalletHandler) AdminDeleteCryptoAddress(c echo.Context) error {
	if err := h.walletUC.DeleteCryptoAddress(c.Request().Context(), strings.ToUpper(c.Param("currency"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
