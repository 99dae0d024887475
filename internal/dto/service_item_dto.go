package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travel-crm-api/internal/domain"
)

// CreateServiceItemRequest represents the request to add a line item to a
// proposal
type CreateServiceItemRequest struct {
	ProposalID      uuid.UUID             `json:"proposalId" binding:"required"`
	Type            domain.ServiceType    `json:"type" binding:"required,oneof=flight hotel transfer tour cruise insurance other"`
	Description     string                `json:"description" binding:"max=255" example:"GRU-LIS round trip"`
	Value           float64               `json:"value" example:"3200.50"`
	CommissionType  domain.CommissionType `json:"commissionType" binding:"required,oneof=percentage fixed"`
	CommissionValue float64               `json:"commissionValue" example:"10"`
	Details         map[string]interface{} `json:"details,omitempty"`
	StartDate       *time.Time            `json:"startDate,omitempty"`
	EndDate         *time.Time            `json:"endDate,omitempty"`
}

// UpdateServiceItemRequest represents the request to update a line item.
// All fields are optional.
type UpdateServiceItemRequest struct {
	Type            *domain.ServiceType    `json:"type" binding:"omitempty,oneof=flight hotel transfer tour cruise insurance other"`
	Description     *string                `json:"description" binding:"omitempty,max=255"`
	Value           *float64               `json:"value"`
	CommissionType  *domain.CommissionType `json:"commissionType" binding:"omitempty,oneof=percentage fixed"`
	CommissionValue *float64               `json:"commissionValue"`
	Details         map[string]interface{} `json:"details,omitempty"`
	StartDate       *time.Time             `json:"startDate,omitempty"`
	EndDate         *time.Time             `json:"endDate,omitempty"`
}

// ServiceItemResponse represents a line item in API responses
type ServiceItemResponse struct {
	ID              uuid.UUID             `json:"serviceItemId"`
	ProposalID      uuid.UUID             `json:"proposalId"`
	Type            domain.ServiceType    `json:"type"`
	Description     string                `json:"description"`
	Value           float64               `json:"value"`
	CommissionType  domain.CommissionType `json:"commissionType"`
	CommissionValue float64               `json:"commissionValue"`
	Details         datatypes.JSON        `json:"details,omitempty"`
	StartDate       *time.Time            `json:"startDate,omitempty"`
	EndDate         *time.Time            `json:"endDate,omitempty"`
	CalendarDate    *time.Time            `json:"calendarDate,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// ProposalTotals is the aggregate the service ledger computes for a
// proposal: total sale value and total commission (profit) across lines.
// Recomputed on demand, never cached across writes.
type ProposalTotals struct {
	Value      float64 `json:"value"`
	Commission float64 `json:"commission"`
}

// ToServiceItemResponse converts a domain line item to its response form
func ToServiceItemResponse(s *domain.ServiceItem) *ServiceItemResponse {
	return &ServiceItemResponse{
		ID:              s.ID,
		ProposalID:      s.ProposalID,
		Type:            s.Type,
		Description:     s.Description,
		Value:           s.Value,
		CommissionType:  s.CommissionType,
		CommissionValue: s.CommissionValue,
		Details:         s.Details,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		CalendarDate:    s.CalendarDate,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
