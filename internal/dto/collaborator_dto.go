package dto

import (
	"time"

	"github.com/google/uuid"

	"travel-crm-api/internal/domain"
)

// CreateCollaboratorRequest represents the request to register an agency
// team member
type CreateCollaboratorRequest struct {
	AgencyID             uuid.UUID             `json:"agencyId" binding:"required"`
	UserID               uuid.UUID             `json:"userId" binding:"required"`
	Name                 string                `json:"name" binding:"required,min=1,max=255"`
	CommissionPercentage float64               `json:"commissionPercentage" binding:"gte=0,lte=100" example:"10"`
	CommissionBase       domain.CommissionBase `json:"commissionBase" binding:"required,oneof=sale_value profit"`
}

// UpdateCollaboratorRequest represents the request to update a
// collaborator. All fields are optional.
type UpdateCollaboratorRequest struct {
	Name                 *string                    `json:"name" binding:"omitempty,min=1,max=255"`
	CommissionPercentage *float64                   `json:"commissionPercentage" binding:"omitempty,gte=0,lte=100"`
	CommissionBase       *domain.CommissionBase     `json:"commissionBase" binding:"omitempty,oneof=sale_value profit"`
	Status               *domain.CollaboratorStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CollaboratorResponse represents a collaborator in API responses
type CollaboratorResponse struct {
	ID                   uuid.UUID                 `json:"collaboratorId"`
	AgencyID             uuid.UUID                 `json:"agencyId"`
	UserID               uuid.UUID                 `json:"userId"`
	Name                 string                    `json:"name"`
	CommissionPercentage float64                   `json:"commissionPercentage"`
	CommissionBase       domain.CommissionBase     `json:"commissionBase"`
	Status               domain.CollaboratorStatus `json:"status"`
	CreatedAt            time.Time                 `json:"createdAt"`
	UpdatedAt            time.Time                 `json:"updatedAt"`
}

// ToCollaboratorResponse converts a domain collaborator to its response
// form
func ToCollaboratorResponse(c *domain.Collaborator) *CollaboratorResponse {
	return &CollaboratorResponse{
		ID:                   c.ID,
		AgencyID:             c.AgencyID,
		UserID:               c.UserID,
		Name:                 c.Name,
		CommissionPercentage: c.CommissionPercentage,
		CommissionBase:       c.CommissionBase,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
