package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a financial transaction
type TransactionType string

const (
	TransactionTypeIncome TransactionType = "income"
)

// TransactionStatus represents the lifecycle of a financial transaction.
// Transactions are cancelled on proposal reopen, never deleted.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// FinancialTransaction records expected agency income tied to a closed
// proposal.
type FinancialTransaction struct {
	BaseModel
	AgencyID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_financial_transactions_agency_id" json:"agency_id"`
	ProposalID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_financial_transactions_proposal_id" json:"proposal_id"`
	Type        TransactionType   `gorm:"type:varchar(50);not null;default:'income'" json:"type"`
	Status      TransactionStatus `gorm:"type:varchar(50);not null;default:'pending';index:idx_financial_transactions_status" json:"status"`
	Description string            `gorm:"type:varchar(255)" json:"description"`
	TotalValue  float64           `gorm:"not null;default:0" json:"total_value"`
	ProfitValue float64           `gorm:"not null;default:0" json:"profit_value"`
	LaunchDate  time.Time         `gorm:"type:timestamp;not null" json:"launch_date"`
}

// TableName specifies the table name for FinancialTransaction
func (FinancialTransaction) TableName() string {
	return "financial_transactions"
}
