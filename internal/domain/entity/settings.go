package entity

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings holds the storefront-wide switches staff can flip.
type SiteSettings struct {
	MaintenanceMode    bool       `json:"maintenanceMode"`
	MaintenanceMessage string     `json:"maintenanceMessage,omitempty"`
	SupportEmail       string     `json:"supportEmail,omitempty"`
	UpdatedBy          *uuid.UUID `json:"updatedBy,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
