package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when a ticket is not found.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository persists support tickets and their messages.
type TicketRepository interface {
	// Create persists the ticket and any messages attached to it.
	Create(ctx context.Context, ticket *entity.SupportTicket) error

	// FindByID loads the ticket with messages in creation order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)
	List(ctx context.Context, status *entity.TicketStatus) ([]*entity.SupportTicket, error)
	AddMessage(ctx context.Context, message *entity.TicketMessage) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error
}
