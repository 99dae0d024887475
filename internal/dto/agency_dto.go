package dto

import (
	"github.com/google/uuid"

	"travel-crm-api/internal/domain"
)

// CreateAgencyRequest is the request DTO for registering an agency tenant
type CreateAgencyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Mundo Viagens"`
}

// UpdateAgencyRequest is the request DTO for updating an agency. A non-nil
// ClosedWonStageID pins the canonical closed-won stage.
type UpdateAgencyRequest struct {
	Name             *string    `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	ClosedWonStageID *uuid.UUID `json:"closedWonStageId,omitempty"`
}

// AgencyResponse is the response DTO for an agency
type AgencyResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	ClosedWonStageID *uuid.UUID `json:"closedWonStageId,omitempty"`
}

// ToAgencyResponse converts an Agency domain model to a response DTO
func ToAgencyResponse(a *domain.Agency) *AgencyResponse {
	return &AgencyResponse{
		ID:               a.ID,
		Name:             a.Name,
		ClosedWonStageID: a.ClosedWonStageID,
	}
}
