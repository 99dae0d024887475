package domain

import "github.com/google/uuid"

// Agency represents a travel agency tenant. Every pipeline entity is scoped
// to exactly one agency.
type Agency struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	// ClosedWonStageID pins the canonical closed-won stage. When nil the
	// first stage flagged is_closed (by sort order) is used instead.
	ClosedWonStageID *uuid.UUID     `gorm:"type:uuid" json:"closed_won_stage_id"`
	Stages           []Stage        `gorm:"foreignKey:AgencyID;constraint:OnDelete:CASCADE" json:"stages,omitempty"`
	Collaborators    []Collaborator `gorm:"foreignKey:AgencyID;constraint:OnDelete:CASCADE" json:"collaborators,omitempty"`
}

// TableName specifies the table name for Agency
func (Agency) TableName() string {
	return "agencies"
}
