package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the support workflow state.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// IsValid checks if the TicketStatus is a known value.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// SupportTicket is a conversation between a user and staff.
type SupportTicket struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Subject   string          `json:"subject"`
	Status    TicketStatus    `json:"status"`
	Messages  []TicketMessage `json:"messages,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TicketMessage is one message in a ticket, ordered by CreatedAt.
type TicketMessage struct {
	ID        uuid.UUID `json:"id"`
	TicketID  uuid.UUID `json:"ticketId"`
	AuthorID  uuid.UUID `json:"authorId"`
	IsStaff   bool      `json:"isStaff"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
