package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketService_Reply_ClosedTicket(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewTicketService(txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	ticketID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().NewTicketRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, ticketID).Return(&entity.SupportTicket{ID: ticketID, UserID: userID, Status: entity.TicketStatusClosed}, nil)
	})

	_, err := svc.Reply(ctx, userID, ticketID, &usecase.TicketReplyInput{Message: "still broken"})

	requireErrorCode(t, err, "TICKET_CLOSED")
}

func TestTicketService_Reply_OtherUsersTicket(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewTicketService(txManager, newDiscardLogger())
	ctx := context.Background()
	ticketID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().NewTicketRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, ticketID).Return(&entity.SupportTicket{ID: ticketID, UserID: uuid.New(), Status: entity.TicketStatusOpen}, nil)
	})

	_, err := svc.Reply(ctx, uuid.New(), ticketID, &usecase.TicketReplyInput{Message: "hi"})

	requireErrorCode(t, err, "TICKET_NOT_FOUND")
}

func TestTicketService_StaffReply_MovesOpenToInProgress(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewTicketService(txManager, newDiscardLogger())
	ctx := context.Background()
	staffID := uuid.New()
	ownerID := uuid.New()
	ticketID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().NewTicketRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, ticketID).Return(&entity.SupportTicket{
			ID: ticketID, UserID: ownerID, Subject: "Refund", Status: entity.TicketStatusOpen,
		}, nil)
		repo.EXPECT().AddMessage(ctx, mock.MatchedBy(func(m *entity.TicketMessage) bool {
			return m.IsStaff && m.AuthorID == staffID && m.Body == "On it"
		})).Return(nil)
		repo.EXPECT().UpdateStatus(ctx, ticketID, entity.TicketStatusInProgress).Return(nil)
	})
	var note *entity.Notification
	expectNotification(t, txManager, &note)

	message, err := svc.StaffReply(ctx, staffID, ticketID, &usecase.TicketReplyInput{Message: "On it"})

	require.NoError(t, err)
	assert.True(t, message.IsStaff)
	require.NotNil(t, note)
	assert.Equal(t, ownerID, note.UserID)
	assert.Equal(t, entity.NotificationTypeSupport, note.Type)
}

func TestTicketService_UpdateStatus_ReopensClosed(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewTicketService(txManager, newDiscardLogger())
	ctx := context.Background()
	ticketID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().NewTicketRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, ticketID).Return(&entity.SupportTicket{ID: ticketID, Status: entity.TicketStatusClosed}, nil)
		repo.EXPECT().UpdateStatus(ctx, ticketID, entity.TicketStatusOpen).Return(nil)
	})

	ticket, err := svc.UpdateStatus(ctx, ticketID, &usecase.TicketStatusInput{Status: "OPEN"})

	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
}
