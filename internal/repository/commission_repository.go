package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// CommissionRepository defines the interface for commission record data
// access. Records are created on close and removed by proposal ID on
// reopen.
type CommissionRepository interface {
	Create(ctx context.Context, record *domain.CommissionRecord) error
	FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.CommissionRecord, error)
	FindByCollaboratorAndPeriod(ctx context.Context, collaboratorID uuid.UUID, month, year int) ([]*domain.CommissionRecord, error)
	ExistsByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error)
	DeleteByProposalID(ctx context.Context, proposalID uuid.UUID) (int64, error)
	FindForOpenProposals(ctx context.Context) ([]*domain.CommissionRecord, error)
}

// commissionRepositoryImpl is the GORM implementation of
// CommissionRepository
type commissionRepositoryImpl struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new instance of CommissionRepository
func NewCommissionRepository(db *gorm.DB) CommissionRepository {
	return &commissionRepositoryImpl{db: db}
}

// Create creates a new commission record
func (r *commissionRepositoryImpl) Create(ctx context.Context, record *domain.CommissionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByProposalID finds the commission records referencing a proposal
func (r *commissionRepositoryImpl) FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.CommissionRecord, error) {
	var records []*domain.CommissionRecord
	if err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByCollaboratorAndPeriod finds a collaborator's commission records for
// one period
func (r *commissionRepositoryImpl) FindByCollaboratorAndPeriod(ctx context.Context, collaboratorID uuid.UUID, month, year int) ([]*domain.CommissionRecord, error) {
	var records []*domain.CommissionRecord
	if err := r.db.WithContext(ctx).
		Where("collaborator_id = ? AND period_month = ? AND period_year = ?", collaboratorID, month, year).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ExistsByProposalID reports whether any commission record references the
// proposal. The orchestrator checks this before creating to stay
// idempotent under retry.
func (r *commissionRepositoryImpl) ExistsByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.CommissionRecord{}).
		Where("proposal_id = ?", proposalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByProposalID removes every commission record referencing the
// proposal and reports how many were removed
func (r *commissionRepositoryImpl) DeleteByProposalID(ctx context.Context, proposalID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Delete(&domain.CommissionRecord{})
	return result.RowsAffected, result.Error
}

// FindForOpenProposals finds commission records whose proposal is no longer
// in a closed stage. These are reconciliation drift: a reopen reversal that
// did not complete.
func (r *commissionRepositoryImpl) FindForOpenProposals(ctx context.Context) ([]*domain.CommissionRecord, error) {
	var records []*domain.CommissionRecord
	if err := r.db.WithContext(ctx).
		Joins("JOIN proposals ON proposals.id = commission_records.proposal_id AND proposals.deleted_at IS NULL").
		Joins("JOIN stages ON stages.id = proposals.stage_id").
		Where("stages.is_closed = ?", false).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
