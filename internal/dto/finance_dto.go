package dto

import (
	"time"

	"github.com/google/uuid"

	"travel-crm-api/internal/domain"
)

// TransactionResponse represents a financial transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID                `json:"transactionId"`
	AgencyID    uuid.UUID                `json:"agencyId"`
	ProposalID  uuid.UUID                `json:"proposalId"`
	Type        domain.TransactionType   `json:"type"`
	Status      domain.TransactionStatus `json:"status"`
	Description string                   `json:"description"`
	TotalValue  float64                  `json:"totalValue"`
	ProfitValue float64                  `json:"profitValue"`
	LaunchDate  time.Time                `json:"launchDate"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// CommissionResponse represents a commission record in API responses
type CommissionResponse struct {
	ID                   uuid.UUID             `json:"commissionId"`
	CollaboratorID       uuid.UUID             `json:"collaboratorId"`
	ProposalID           uuid.UUID             `json:"proposalId"`
	SaleValue            float64               `json:"saleValue"`
	ProfitValue          float64               `json:"profitValue"`
	CommissionPercentage float64               `json:"commissionPercentage"`
	CommissionBase       domain.CommissionBase `json:"commissionBase"`
	CommissionAmount     float64               `json:"commissionAmount"`
	PeriodMonth          int                   `json:"periodMonth"`
	PeriodYear           int                   `json:"periodYear"`
	CreatedAt            time.Time             `json:"createdAt"`
}

// CommissionReportResponse aggregates a collaborator's commission records
// for one period
type CommissionReportResponse struct {
	CollaboratorID uuid.UUID             `json:"collaboratorId"`
	PeriodMonth    int                   `json:"periodMonth"`
	PeriodYear     int                   `json:"periodYear"`
	TotalAmount    float64               `json:"totalAmount"`
	Records        []*CommissionResponse `json:"records"`
}

// ToTransactionResponse converts a domain transaction to its response form
func ToTransactionResponse(t *domain.FinancialTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		AgencyID:    t.AgencyID,
		ProposalID:  t.ProposalID,
		Type:        t.Type,
		Status:      t.Status,
		Description: t.Description,
		TotalValue:  t.TotalValue,
		ProfitValue: t.ProfitValue,
		LaunchDate:  t.LaunchDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToCommissionResponse converts a domain commission record to its response
// form
func ToCommissionResponse(r *domain.CommissionRecord) *CommissionResponse {
	return &CommissionResponse{
		ID:                   r.ID,
		CollaboratorID:       r.CollaboratorID,
		ProposalID:           r.ProposalID,
		SaleValue:            r.SaleValue,
		ProfitValue:          r.ProfitValue,
		CommissionPercentage: r.CommissionPercentage,
		CommissionBase:       r.CommissionBase,
		CommissionAmount:     r.CommissionAmount,
		PeriodMonth:          r.PeriodMonth,
		PeriodYear:           r.PeriodYear,
		CreatedAt:            r.CreatedAt,
	}
}
