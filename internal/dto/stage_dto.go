package dto

import (
	"time"

	"github.com/google/uuid"

	"travel-crm-api/internal/domain"
)

// CreateStageRequest represents the request to create a pipeline stage
type CreateStageRequest struct {
	AgencyID  uuid.UUID `json:"agencyId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Name      string    `json:"name" binding:"required,min=1,max=100" example:"Negotiation"`
	Color     string    `json:"color" binding:"max=50" example:"#4f8df7"`
	IsClosed  bool      `json:"isClosed" example:"false"`
	IsLost    bool      `json:"isLost" example:"false"`
	SortOrder int       `json:"sortOrder" example:"2"`
}

// UpdateStageRequest represents the request to update a stage.
// All fields are optional.
type UpdateStageRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color     *string `json:"color" binding:"omitempty,max=50"`
	IsClosed  *bool   `json:"isClosed"`
	IsLost    *bool   `json:"isLost"`
	SortOrder *int    `json:"sortOrder"`
}

// ReorderStagesRequest carries the full stage ordering after a column drag
type ReorderStagesRequest struct {
	StageIDs []uuid.UUID `json:"stageIds" binding:"required,min=1,dive,uuid"`
}

// StageResponse represents a stage in API responses
type StageResponse struct {
	ID        uuid.UUID `json:"stageId"`
	AgencyID  uuid.UUID `json:"agencyId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	IsClosed  bool      `json:"isClosed"`
	IsLost    bool      `json:"isLost"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToStageResponse converts a domain stage to its response form
func ToStageResponse(s *domain.Stage) *StageResponse {
	return &StageResponse{
		ID:        s.ID,
		AgencyID:  s.AgencyID,
		Name:      s.Name,
		Color:     s.Color,
		IsClosed:  s.IsClosed,
		IsLost:    s.IsLost,
		SortOrder: s.SortOrder,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
