package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryActionStageChanged is the audit action recorded for every stage
// change. The value matches what the agency-facing UI displays.
const HistoryActionStageChanged = "Etapa alterada"

// ProposalHistory is an append-only audit trail entry. Entries are never
// updated or deleted; the repository exposes no mutation beyond Append.
type ProposalHistory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProposalID  uuid.UUID `gorm:"type:uuid;not null;index:idx_proposal_histories_proposal_id" json:"proposal_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Action      string    `gorm:"type:varchar(100);not null" json:"action"`
	Description string    `gorm:"type:text" json:"description"`
	OldValue    string    `gorm:"type:varchar(255)" json:"old_value"`
	NewValue    string    `gorm:"type:varchar(255)" json:"new_value"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate assigns an ID when the database does not (sqlite in tests)
func (h *ProposalHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for ProposalHistory
func (ProposalHistory) TableName() string {
	return "proposal_histories"
}
