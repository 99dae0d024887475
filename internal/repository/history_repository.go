package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// HistoryRepository defines the interface for the proposal audit trail.
// The trail is append-only; there is deliberately no update or delete.
type HistoryRepository interface {
	Append(ctx context.Context, tx *gorm.DB, entry *domain.ProposalHistory) error
	FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalHistory, error)
}

// historyRepositoryImpl is the GORM implementation of HistoryRepository
type historyRepositoryImpl struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new instance of HistoryRepository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepositoryImpl{db: db}
}

// Append writes one audit trail entry. When tx is non-nil the entry joins
// the caller's transaction so it commits together with the stage change.
func (r *historyRepositoryImpl) Append(ctx context.Context, tx *gorm.DB, entry *domain.ProposalHistory) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(entry).Error
}

// FindByProposalID returns a proposal's audit trail, newest first
func (r *historyRepositoryImpl) FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalHistory, error) {
	var entries []*domain.ProposalHistory
	if err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
