package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// TransactionRepository defines the interface for financial transaction
// data access. Transactions are cancelled, never deleted.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.FinancialTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FinancialTransaction, error)
	FindByProposalID(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) ([]*domain.FinancialTransaction, error)
	FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.FinancialTransaction, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	CancelByProposalID(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) (int64, error)
	HasActiveByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error)
	CountPending(ctx context.Context) (int64, error)
	FindPendingForOpenProposals(ctx context.Context) ([]*domain.FinancialTransaction, error)
}

// transactionRepositoryImpl is the GORM implementation of
// TransactionRepository
type transactionRepositoryImpl struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

// Create creates a new financial transaction
func (r *transactionRepositoryImpl) Create(ctx context.Context, transaction *domain.FinancialTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// FindByID finds a transaction by its ID
func (r *transactionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinancialTransaction, error) {
	var transaction domain.FinancialTransaction
	if err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// FindByProposalID finds all transactions of a proposal, optionally
// filtered by type
func (r *transactionRepositoryImpl) FindByProposalID(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) ([]*domain.FinancialTransaction, error) {
	query := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}

	var transactions []*domain.FinancialTransaction
	if err := query.Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindByAgencyID finds all transactions of an agency, newest first
func (r *transactionRepositoryImpl) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.FinancialTransaction, error) {
	var transactions []*domain.FinancialTransaction
	if err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("launch_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Cancel flips a transaction's status to cancelled. The record is kept.
func (r *transactionRepositoryImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.FinancialTransaction{}).
		Where("id = ?", id).
		Update("status", domain.TransactionStatusCancelled).Error
}

// CancelByProposalID cancels every non-cancelled transaction of the given
// type referencing the proposal and reports how many were flipped
func (r *transactionRepositoryImpl) CancelByProposalID(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.FinancialTransaction{}).
		Where("proposal_id = ? AND type = ? AND status <> ?", proposalID, txType, domain.TransactionStatusCancelled).
		Update("status", domain.TransactionStatusCancelled)
	return result.RowsAffected, result.Error
}

// HasActiveByProposalID reports whether the proposal already has a
// non-cancelled income transaction. Used to keep close retries idempotent.
func (r *transactionRepositoryImpl) HasActiveByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.FinancialTransaction{}).
		Where("proposal_id = ? AND status <> ?", proposalID, domain.TransactionStatusCancelled).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountPending returns the number of pending transactions
func (r *transactionRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.FinancialTransaction{}).
		Where("status = ?", domain.TransactionStatusPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindPendingForOpenProposals finds pending income transactions whose
// proposal is no longer in a closed stage. These are reconciliation drift:
// a reopen reversal that did not complete.
func (r *transactionRepositoryImpl) FindPendingForOpenProposals(ctx context.Context) ([]*domain.FinancialTransaction, error) {
	var transactions []*domain.FinancialTransaction
	if err := r.db.WithContext(ctx).
		Joins("JOIN proposals ON proposals.id = financial_transactions.proposal_id AND proposals.deleted_at IS NULL").
		Joins("JOIN stages ON stages.id = proposals.stage_id").
		Where("financial_transactions.status = ? AND stages.is_closed = ?", domain.TransactionStatusPending, false).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
