package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TicketHandlerParams holds dependencies for TicketHandler, injected by Fx.
type TicketHandlerParams struct {
	fx.In

	TicketUC usecase.TicketUsecase
}

// TicketHandler serves the support desk for customers and staff.
type TicketHandler struct {
	ticketUC usecase.TicketUsecase
}

// NewTicketHandler is the constructor for TicketHandler.
func NewTicketHandler(params TicketHandlerParams) *TicketHandler {
	return &TicketHandler{ticketUC: params.TicketUC}
}

// ListMine returns the caller's tickets.
func (h *TicketHandler) ListMine(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	tickets, err := h.ticketUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"tickets": tickets})
}

// Create opens a ticket.
func (h *TicketHandler) Create(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateTicketInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ticket, err := h.ticketUC.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ticket)
}

// GetMine returns one of the caller's tickets with its messages.
func (h *TicketHandler) GetMine(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	ticket, err := h.ticketUC.GetMine(c.Request().Context(), userID, ticketID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ticket)
}

// Reply adds the caller's message to an open ticket.
func (h *TicketHandler) Reply(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.TicketReplyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.ticketUC.Reply(c.Request().Context(), userID, ticketID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// AdminList returns the staff ticket queue.
func (h *TicketHandler) AdminList(c echo.Context) error {
	var query usecase.TicketListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	tickets, err := h.ticketUC.List(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"tickets": tickets})
}

// AdminGet returns any ticket with its messages.
func (h *TicketHandler) AdminGet(c echo.Context) error {
	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	ticket, err := h.ticketUC.Get(c.Request().Context(), ticketID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ticket)
}

// AdminUpdateStatus moves a ticket between OPEN, IN_PROGRESS and CLOSED.
func (h *TicketHandler) AdminUpdateStatus(c echo.Context) error {
	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.TicketStatusInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ticket, err := h.ticketUC.UpdateStatus(c.Request().Context(), ticketID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ticket)
}

// AdminReply answers a ticket as staff.
func (h *TicketHandler) AdminReply(c echo.Context) error {
	staffID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.TicketReplyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.ticketUC.StaffReply(c.Request().Context(), staffID, ticketID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}
