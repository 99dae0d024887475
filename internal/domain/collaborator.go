package domain

import "github.com/google/uuid"

// CommissionBase selects which proposal total a collaborator's commission
// is computed on
type CommissionBase string

const (
	CommissionBaseSaleValue CommissionBase = "sale_value"
	CommissionBaseProfit    CommissionBase = "profit"
)

// CollaboratorStatus represents whether a collaborator is active
type CollaboratorStatus string

const (
	CollaboratorStatusActive   CollaboratorStatus = "active"
	CollaboratorStatusInactive CollaboratorStatus = "inactive"
)

// Collaborator represents an agency team member who can be assigned to
// proposals and earns commission when they close.
type Collaborator struct {
	BaseModel
	AgencyID             uuid.UUID          `gorm:"type:uuid;not null;index:idx_collaborators_agency_id" json:"agency_id"`
	UserID               uuid.UUID          `gorm:"type:uuid;not null;index:idx_collaborators_user_id" json:"user_id"`
	Name                 string             `gorm:"type:varchar(255);not null" json:"name"`
	CommissionPercentage float64            `gorm:"not null;default:0" json:"commission_percentage"`
	CommissionBase       CommissionBase     `gorm:"type:varchar(50);not null;default:'sale_value'" json:"commission_base"`
	Status               CollaboratorStatus `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
}

// TableName specifies the table name for Collaborator
func (Collaborator) TableName() string {
	return "collaborators"
}
