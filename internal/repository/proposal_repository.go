package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// StageAggregate is one row of the per-stage pipeline aggregation
type StageAggregate struct {
	StageID       uuid.UUID
	ProposalCount int64
	TotalValue    float64
}

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Proposal, error)
	FindByStageID(ctx context.Context, stageID uuid.UUID) ([]*domain.Proposal, error)
	Update(ctx context.Context, proposal *domain.Proposal) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStage(ctx context.Context, tx *gorm.DB, id, stageID uuid.UUID) error
	NextNumber(ctx context.Context, agencyID uuid.UUID) (int64, error)
	AggregateByStage(ctx context.Context, agencyID uuid.UUID) ([]*StageAggregate, error)
	Count(ctx context.Context) (int64, error)
}

// proposalRepositoryImpl is the GORM implementation of ProposalRepository
type proposalRepositoryImpl struct {
	db *gorm.DB
}

// NewProposalRepository creates a new instance of ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepositoryImpl{db: db}
}

// Create creates a new proposal
func (r *proposalRepositoryImpl) Create(ctx context.Context, proposal *domain.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

// FindByID finds a proposal by its ID with its current stage preloaded
func (r *proposalRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	var proposal domain.Proposal
	if err := r.db.WithContext(ctx).
		Preload("Stage").
		First(&proposal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// FindByAgencyID finds all proposals of an agency, newest first
func (r *proposalRepositoryImpl) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Proposal, error) {
	var proposals []*domain.Proposal
	if err := r.db.WithContext(ctx).
		Preload("Stage").
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// FindByStageID finds all proposals currently in a stage
func (r *proposalRepositoryImpl) FindByStageID(ctx context.Context, stageID uuid.UUID) ([]*domain.Proposal, error) {
	var proposals []*domain.Proposal
	if err := r.db.WithContext(ctx).
		Where("stage_id = ?", stageID).
		Order("updated_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// Update saves all proposal fields
func (r *proposalRepositoryImpl) Update(ctx context.Context, proposal *domain.Proposal) error {
	return r.db.WithContext(ctx).Save(proposal).Error
}

// Delete soft deletes a proposal by ID. Service items and history rows are
// removed by the database cascade; the ledgers are handled by the service
// layer before this is called.
func (r *proposalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Proposal{}, "id = ?", id).Error
}

// SetStage updates only the proposal's stage_id. When tx is non-nil the
// update joins the caller's transaction so the stage change and its audit
// entry commit together.
func (r *proposalRepositoryImpl) SetStage(ctx context.Context, tx *gorm.DB, id, stageID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Where("id = ?", id).
		Update("stage_id", stageID).Error
}

// NextNumber returns the next sequential proposal number for an agency
func (r *proposalRepositoryImpl) NextNumber(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	var max int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Where("agency_id = ?", agencyID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}

// AggregateByStage counts proposals and sums their service values per stage
func (r *proposalRepositoryImpl) AggregateByStage(ctx context.Context, agencyID uuid.UUID) ([]*StageAggregate, error) {
	var rows []*StageAggregate
	if err := r.db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Select("proposals.stage_id AS stage_id, COUNT(DISTINCT proposals.id) AS proposal_count, COALESCE(SUM(service_items.value), 0) AS total_value").
		Joins("LEFT JOIN service_items ON service_items.proposal_id = proposals.id AND service_items.deleted_at IS NULL").
		Where("proposals.agency_id = ?", agencyID).
		Group("proposals.stage_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total number of live proposals
func (r *proposalRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
