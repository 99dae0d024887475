package domain

import "github.com/google/uuid"

// CommissionRecord stores the commission generated for a collaborator when
// a proposal closes. At most one set of records exists per proposal: created
// on close, deleted (by proposal ID) on reopen.
type CommissionRecord struct {
	BaseModel
	CollaboratorID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_commission_records_collaborator_id" json:"collaborator_id"`
	ProposalID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_commission_records_proposal_id" json:"proposal_id"`
	SaleValue            float64        `gorm:"not null;default:0" json:"sale_value"`
	ProfitValue          float64        `gorm:"not null;default:0" json:"profit_value"`
	CommissionPercentage float64        `gorm:"not null;default:0" json:"commission_percentage"`
	CommissionBase       CommissionBase `gorm:"type:varchar(50);not null" json:"commission_base"`
	CommissionAmount     float64        `gorm:"not null;default:0" json:"commission_amount"`
	PeriodMonth          int            `gorm:"not null;index:idx_commission_records_period,priority:2" json:"period_month"`
	PeriodYear           int            `gorm:"not null;index:idx_commission_records_period,priority:1" json:"period_year"`
}

// TableName specifies the table name for CommissionRecord
func (CommissionRecord) TableName() string {
	return "commission_records"
}
