package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/metrics"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

// FinanceService defines the interface for the finance screens: listing
// transactions and building commission reports. Transaction creation and
// reversal stay with the transition orchestrator.
type FinanceService interface {
	GetTransactionsByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.TransactionResponse, error)
	GetTransactionsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.TransactionResponse, error)
	CancelTransaction(ctx context.Context, transactionID uuid.UUID) (*dto.TransactionResponse, error)
	GetCommissionsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.CommissionResponse, error)
	CommissionReport(ctx context.Context, collaboratorID uuid.UUID, month, year int) (*dto.CommissionReportResponse, error)
}

// financeServiceImpl is the implementation of FinanceService
type financeServiceImpl struct {
	transactionRepo repository.TransactionRepository
	commissionRepo  repository.CommissionRepository
	metrics         *metrics.Metrics
}

// NewFinanceService creates a new instance of FinanceService
func NewFinanceService(
	transactionRepo repository.TransactionRepository,
	commissionRepo repository.CommissionRepository,
	m *metrics.Metrics,
) FinanceService {
	return &financeServiceImpl{
		transactionRepo: transactionRepo,
		commissionRepo:  commissionRepo,
		metrics:         m,
	}
}

// GetTransactionsByAgency lists an agency's transactions, newest first
func (s *financeServiceImpl) GetTransactionsByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list transactions", err.Error())
	}
	return toTransactionResponses(transactions), nil
}

// GetTransactionsByProposal lists the transactions referencing a proposal
func (s *financeServiceImpl) GetTransactionsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindByProposalID(ctx, proposalID, "")
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list transactions", err.Error())
	}
	return toTransactionResponses(transactions), nil
}

// CancelTransaction flips one transaction to cancelled. The record stays.
func (s *financeServiceImpl) CancelTransaction(ctx context.Context, transactionID uuid.UUID) (*dto.TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Transaction not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load transaction", err.Error())
	}
	if transaction.Status == domain.TransactionStatusCancelled {
		return dto.ToTransactionResponse(transaction), nil
	}

	if err := s.transactionRepo.Cancel(ctx, transactionID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to cancel transaction", err.Error())
	}
	s.metrics.AddTransactionsCancelled(1)

	transaction.Status = domain.TransactionStatusCancelled
	return dto.ToTransactionResponse(transaction), nil
}

// GetCommissionsByProposal lists the commission records of a proposal
func (s *financeServiceImpl) GetCommissionsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.CommissionResponse, error) {
	records, err := s.commissionRepo.FindByProposalID(ctx, proposalID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list commissions", err.Error())
	}

	responses := make([]*dto.CommissionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.ToCommissionResponse(record))
	}
	return responses, nil
}

// CommissionReport aggregates a collaborator's commission records for one
// period
func (s *financeServiceImpl) CommissionReport(ctx context.Context, collaboratorID uuid.UUID, month, year int) (*dto.CommissionReportResponse, error) {
	if month < 1 || month > 12 {
		return nil, response.NewAppError(response.ErrCodeValidation, "Period month must be between 1 and 12", "")
	}

	records, err := s.commissionRepo.FindByCollaboratorAndPeriod(ctx, collaboratorID, month, year)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load commission records", err.Error())
	}

	total := decimal.Zero
	responses := make([]*dto.CommissionResponse, 0, len(records))
	for _, record := range records {
		total = total.Add(decimal.NewFromFloat(record.CommissionAmount))
		responses = append(responses, dto.ToCommissionResponse(record))
	}
	totalAmount, _ := total.Round(2).Float64()

	return &dto.CommissionReportResponse{
		CollaboratorID: collaboratorID,
		PeriodMonth:    month,
		PeriodYear:     year,
		TotalAmount:    totalAmount,
		Records:        responses,
	}, nil
}

func toTransactionResponses(transactions []*domain.FinancialTransaction) []*dto.TransactionResponse {
	responses := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, dto.ToTransactionResponse(transaction))
	}
	return responses
}
