package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ticketService implements the TicketUsecase interface.
type ticketService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewTicketService is the constructor for ticketService.
func NewTicketService(txManager repository.TransactionManager, logger *slog.Logger) usecase.TicketUsecase {
	return &ticketService{txManager: txManager, logger: logger}
}

func findTicket(ctx context.Context, repo repository.TicketRepository, ticketID uuid.UUID) (*entity.SupportTicket, error) {
	ticket, err := repo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTicketNotFound, "ticket not found")
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	return ticket, nil
}

func listTickets(found []*entity.SupportTicket, err error) ([]*entity.SupportTicket, error) {
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}
	if found == nil {
		return []*entity.SupportTicket{}, nil
	}

	return found, nil
}

// ListMine returns the caller's tickets.
func (srv *ticketService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	var tickets []*entity.SupportTicket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := listTickets(repoFactory.NewTicketRepository().ListByUser(ctx, userID))
		tickets = found

		return err
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

// Create opens a ticket with its first message.
func (srv *ticketService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateTicketInput) (*entity.SupportTicket, error) {
	now := time.Now()
	ticketID := uuid.New()
	ticket := &entity.SupportTicket{
		ID:      ticketID,
		UserID:  userID,
		Subject: strings.TrimSpace(input.Subject),
		Status:  entity.TicketStatusOpen,
		Messages: []entity.TicketMessage{{
			ID:        uuid.New(),
			TicketID:  ticketID,
			AuthorID:  userID,
			Body:      input.Message,
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewTicketRepository().Create(ctx, ticket), "failed to create ticket")
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Ticket opened", slog.Any("ticketID", ticket.ID), slog.Any("userID", userID))

	return ticket, nil
}

// GetMine returns one of the caller's tickets with its messages.
func (srv *ticketService) GetMine(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error) {
	var ticket *entity.SupportTicket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findTicket(ctx, repoFactory.NewTicketRepository(), ticketID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return errors.Wrap(domainerrors.ErrTicketNotFound, "ticket belongs to another user")
		}
		ticket = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// addMessage appends a message unless the ticket is CLOSED.
func addMessage(ctx context.Context, repo repository.TicketRepository, ticket *entity.SupportTicket, authorID uuid.UUID, isStaff bool, body string) (*entity.TicketMessage, error) {
	if ticket.Status == entity.TicketStatusClosed {
		return nil, errors.Wrap(domainerrors.ErrTicketClosed, "ticket is closed")
	}

	message := &entity.TicketMessage{
		ID:        uuid.New(),
		TicketID:  ticket.ID,
		AuthorID:  authorID,
		IsStaff:   isStaff,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := repo.AddMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to add ticket message")
	}

	return message, nil
}

// Reply adds the owner's message to their ticket.
func (srv *ticketService) Reply(ctx context.Context, userID, ticketID uuid.UUID, input *usecase.TicketReplyInput) (*entity.TicketMessage, error) {
	var message *entity.TicketMessage
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		ticket, err := findTicket(ctx, ticketRepo, ticketID)
		if err != nil {
			return err
		}
		if ticket.UserID != userID {
			return errors.Wrap(domainerrors.ErrTicketNotFound, "ticket belongs to another user")
		}

		message, err = addMessage(ctx, ticketRepo, ticket, userID, false, input.Message)

		return err
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

// List is the staff ticket queue.
func (srv *ticketService) List(ctx context.Context, query *usecase.TicketListQuery) ([]*entity.SupportTicket, error) {
	var status *entity.TicketStatus
	if query.Status != "" {
		s := entity.TicketStatus(query.Status)
		if !s.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown ticket status " + query.Status)
		}
		status = &s
	}

	var tickets []*entity.SupportTicket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := listTickets(repoFactory.NewTicketRepository().List(ctx, status))
		tickets = found

		return err
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

// Get returns any ticket for staff.
func (srv *ticketService) Get(ctx context.Context, ticketID uuid.UUID) (*entity.SupportTicket, error) {
	var ticket *entity.SupportTicket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findTicket(ctx, repoFactory.NewTicketRepository(), ticketID)
		ticket = found

		return err
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// UpdateStatus moves a ticket to any status, including reopening a CLOSED one.
func (srv *ticketService) UpdateStatus(ctx context.Context, ticketID uuid.UUID, input *usecase.TicketStatusInput) (*entity.SupportTicket, error) {
	status := entity.TicketStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown ticket status " + input.Status)
	}

	var ticket *entity.SupportTicket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		found, err := findTicket(ctx, ticketRepo, ticketID)
		if err != nil {
			return err
		}
		if err := ticketRepo.UpdateStatus(ctx, ticketID, status); err != nil {
			return errors.Wrap(err, "failed to update ticket status")
		}
		found.Status = status
		found.UpdatedAt = time.Now()
		ticket = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Ticket status updated", slog.Any("ticketID", ticketID), slog.String("status", string(status)))

	return ticket, nil
}

// StaffReply answers a ticket. An OPEN ticket moves to IN_PROGRESS and the owner is notified.
func (srv *ticketService) StaffReply(ctx context.Context, staffID, ticketID uuid.UUID, input *usecase.TicketReplyInput) (*entity.TicketMessage, error) {
	var (
		message *entity.TicketMessage
		ticket  *entity.SupportTicket
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		found, err := findTicket(ctx, ticketRepo, ticketID)
		if err != nil {
			return err
		}

		message, err = addMessage(ctx, ticketRepo, found, staffID, true, input.Message)
		if err != nil {
			return err
		}

		if found.Status == entity.TicketStatusOpen {
			if err := ticketRepo.UpdateStatus(ctx, ticketID, entity.TicketStatusInProgress); err != nil {
				return errors.Wrap(err, "failed to update ticket status")
			}
			found.Status = entity.TicketStatusInProgress
		}
		ticket = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyBestEffort(ctx, srv.txManager, srv.logger, &entity.Notification{
		UserID:  ticket.UserID,
		Title:   "New reply to your ticket",
		Message: "Support replied to \"" + ticket.Subject + "\".",
		Type:    entity.NotificationTypeSupport,
		Link:    "/tickets/" + ticket.ID.String(),
	})

	return message, nil
}
