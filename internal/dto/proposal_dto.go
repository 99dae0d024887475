package dto

import (
	"time"

	"github.com/google/uuid"

	"travel-crm-api/internal/domain"
)

// CreateProposalRequest represents the request to create a proposal.
// StageID is optional; when omitted the agency's first stage by sort order
// is used.
type CreateProposalRequest struct {
	AgencyID        uuid.UUID  `json:"agencyId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	ClientID        *uuid.UUID `json:"clientId,omitempty"`
	CollaboratorID  *uuid.UUID `json:"collaboratorId,omitempty"`
	StageID         *uuid.UUID `json:"stageId,omitempty"`
	Title           string     `json:"title" binding:"required,min=1,max=255" example:"Honeymoon in Lisbon"`
	DiscountPercent float64    `json:"discountPercent" binding:"gte=0,lte=100" example:"5"`
	Notes           string     `json:"notes" binding:"max=5000"`
}

// UpdateProposalRequest represents the request to update a proposal.
// Stage changes are not accepted here; they go through the transition
// endpoint so financial side effects stay consistent.
type UpdateProposalRequest struct {
	ClientID        *uuid.UUID `json:"clientId,omitempty"`
	CollaboratorID  *uuid.UUID `json:"collaboratorId,omitempty"`
	Title           *string    `json:"title" binding:"omitempty,min=1,max=255"`
	DiscountPercent *float64   `json:"discountPercent" binding:"omitempty,gte=0,lte=100"`
	Notes           *string    `json:"notes" binding:"omitempty,max=5000"`
}

// ProposalResponse represents a proposal in API responses
type ProposalResponse struct {
	ID              uuid.UUID      `json:"proposalId"`
	AgencyID        uuid.UUID      `json:"agencyId"`
	ClientID        *uuid.UUID     `json:"clientId,omitempty"`
	CollaboratorID  *uuid.UUID     `json:"collaboratorId,omitempty"`
	CreatedBy       uuid.UUID      `json:"createdBy"`
	StageID         uuid.UUID      `json:"stageId"`
	Title           string         `json:"title"`
	DiscountPercent float64        `json:"discountPercent"`
	Notes           string         `json:"notes"`
	Number          int64          `json:"number"`
	Stage           *StageResponse `json:"stage,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// ProposalHistoryResponse represents an audit trail entry
type ProposalHistoryResponse struct {
	ID          uuid.UUID `json:"historyId"`
	ProposalID  uuid.UUID `json:"proposalId"`
	UserID      uuid.UUID `json:"userId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	OldValue    string    `json:"oldValue"`
	NewValue    string    `json:"newValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToProposalResponse converts a domain proposal to its response form
func ToProposalResponse(p *domain.Proposal) *ProposalResponse {
	resp := &ProposalResponse{
		ID:              p.ID,
		AgencyID:        p.AgencyID,
		ClientID:        p.ClientID,
		CollaboratorID:  p.CollaboratorID,
		CreatedBy:       p.CreatedBy,
		StageID:         p.StageID,
		Title:           p.Title,
		DiscountPercent: p.DiscountPercent,
		Notes:           p.Notes,
		Number:          p.Number,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Stage.ID != uuid.Nil {
		resp.Stage = ToStageResponse(&p.Stage)
	}
	return resp
}

// ToProposalHistoryResponse converts a domain history entry to its response
// form
func ToProposalHistoryResponse(h *domain.ProposalHistory) *ProposalHistoryResponse {
	return &ProposalHistoryResponse{
		ID:          h.ID,
		ProposalID:  h.ProposalID,
		UserID:      h.UserID,
		Action:      h.Action,
		Description: h.Description,
		OldValue:    h.OldValue,
		NewValue:    h.NewValue,
		CreatedAt:   h.CreatedAt,
	}
}
