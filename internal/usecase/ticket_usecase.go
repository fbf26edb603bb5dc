package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// TicketUsecase is the support desk, from both sides.
type TicketUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateTicketInput) (*entity.SupportTicket, error)
	GetMine(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error)
	Reply(ctx context.Context, userID, ticketID uuid.UUID, input *TicketReplyInput) (*entity.TicketMessage, error)

	List(ctx context.Context, query *TicketListQuery) ([]*entity.SupportTicket, error)
	Get(ctx context.Context, ticketID uuid.UUID) (*entity.SupportTicket, error)
	UpdateStatus(ctx context.Context, ticketID uuid.UUID, input *TicketStatusInput) (*entity.SupportTicket, error)
	StaffReply(ctx context.Context, staffID, ticketID uuid.UUID, input *TicketReplyInput) (*entity.TicketMessage, error)
}

// CreateTicketInput opens a ticket with its first message.
type CreateTicketInput struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=8000"`
}

// TicketReplyInput is one message on a ticket.
type TicketReplyInput struct {
	Message string `json:"message" validate:"required,max=8000"`
}

// TicketListQuery filters the staff ticket queue.
type TicketListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS CLOSED"`
}

// TicketStatusInput moves a ticket.
type TicketStatusInput struct {
	Status string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS CLOSED"`
}
