package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

func preloadMessages(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// Create inserts the ticket together with its opening message.
func (repo *ticketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	ticketM := fromTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt
	ticket.Messages = toTicketMessageDomains(ticketM.Messages)

	return nil
}

func (repo *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	var ticketM model.SupportTicketModel
	err := repo.db.WithContext(ctx).
		Preload("Messages", preloadMessages).
		Where("id = ?", id).
		First(&ticketM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	return toTicketDomain(&ticketM), nil
}

// ListByUser omits messages; the list view only needs headers.
func (repo *ticketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *ticketRepository) List(ctx context.Context, status *entity.TicketStatus) ([]*entity.SupportTicket, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return repo.list(query)
}

func (repo *ticketRepository) list(query *gorm.DB) ([]*entity.SupportTicket, error) {
	var ticketModels []*model.SupportTicketModel
	if err := query.Order("updated_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	tickets := make([]*entity.SupportTicket, 0, len(ticketModels))
	for _, m := range ticketModels {
		tickets = append(tickets, toTicketDomain(m))
	}

	return tickets, nil
}

// AddMessage appends a message and bumps the ticket's updated_at.
func (repo *ticketRepository) AddMessage(ctx context.Context, message *entity.TicketMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	messageM := fromTicketMessageDomain(message)

	db := repo.db.WithContext(ctx)
	if err := db.Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTicketNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add ticket message")
	}
	if err := db.Model(&model.SupportTicketModel{}).
		Where("id = ?", message.TicketID).
		Update("updated_at", messageM.CreatedAt).Error; err != nil {
		return errors.Wrap(err, "failed to touch ticket")
	}

	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *ticketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupportTicketModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ticket status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

func toTicketDomain(data *model.SupportTicketModel) *entity.SupportTicket {
	return &entity.SupportTicket{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Status:    entity.TicketStatus(data.Status),
		Messages:  toTicketMessageDomains(data.Messages),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTicketMessageDomains(models []model.TicketMessageModel) []entity.TicketMessage {
	if len(models) == 0 {
		return nil
	}

	messages := make([]entity.TicketMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, entity.TicketMessage{
			ID:        m.ID,
			TicketID:  m.TicketID,
			AuthorID:  m.AuthorID,
			IsStaff:   m.IsStaff,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}

	return messages
}

func fromTicketDomain(data *entity.SupportTicket) *model.SupportTicketModel {
	messages := make([]model.TicketMessageModel, 0, len(data.Messages))
	for i := range data.Messages {
		msg := data.Messages[i]
		msg.TicketID = data.ID
		if msg.ID == uuid.Nil {
			msg.ID = uuid.New()
		}
		messages = append(messages, *fromTicketMessageDomain(&msg))
	}

	return &model.SupportTicketModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Status:    string(data.Status),
		Messages:  messages,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTicketMessageDomain(data *entity.TicketMessage) *model.TicketMessageModel {
	return &model.TicketMessageModel{
		ID:        data.ID,
		TicketID:  data.TicketID,
		AuthorID:  data.AuthorID,
		IsStaff:   data.IsStaff,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
}
