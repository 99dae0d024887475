package domain

import "github.com/google/uuid"

// Proposal represents a sales opportunity moving through pipeline stages.
// StageID is mutated by form edits and by the transition orchestrator only.
type Proposal struct {
	BaseModel
	AgencyID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_proposals_agency_id" json:"agency_id"`
	ClientID        *uuid.UUID `gorm:"type:uuid;index:idx_proposals_client_id" json:"client_id"`
	CollaboratorID  *uuid.UUID `gorm:"type:uuid;index:idx_proposals_collaborator_id" json:"collaborator_id"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	StageID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_proposals_stage_id" json:"stage_id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	DiscountPercent float64    `gorm:"not null;default:0" json:"discount_percent"`
	Notes           string     `gorm:"type:text" json:"notes"`
	// Number is a sequential per-agency proposal number assigned on create.
	Number    int64             `gorm:"not null;index:idx_proposals_number" json:"number"`
	Stage     Stage             `gorm:"foreignKey:StageID" json:"stage,omitempty"`
	Services  []ServiceItem     `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
	Histories []ProposalHistory `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE" json:"histories,omitempty"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}
