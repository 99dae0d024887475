package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// StageRepository defines the interface for pipeline stage data access
type StageRepository interface {
	Create(ctx context.Context, stage *domain.Stage) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Stage, error)
	FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error)
	FindClosedByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error)
	Update(ctx context.Context, stage *domain.Stage) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, agencyID uuid.UUID, stageIDs []uuid.UUID) error
}

// stageRepositoryImpl is the GORM implementation of StageRepository
type stageRepositoryImpl struct {
	db *gorm.DB
}

// NewStageRepository creates a new instance of StageRepository
func NewStageRepository(db *gorm.DB) StageRepository {
	return &stageRepositoryImpl{db: db}
}

// Create creates a new stage
func (r *stageRepositoryImpl) Create(ctx context.Context, stage *domain.Stage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

// FindByID finds a stage by its ID
func (r *stageRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Stage, error) {
	var stage domain.Stage
	if err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// FindByAgencyID finds all stages of an agency in pipeline order
func (r *stageRepositoryImpl) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error) {
	var stages []*domain.Stage
	if err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("sort_order ASC").
		Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// FindClosedByAgencyID finds the stages flagged is_closed, in pipeline order
func (r *stageRepositoryImpl) FindClosedByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error) {
	var stages []*domain.Stage
	if err := r.db.WithContext(ctx).
		Where("agency_id = ? AND is_closed = ?", agencyID, true).
		Order("sort_order ASC").
		Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// Update saves all stage fields
func (r *stageRepositoryImpl) Update(ctx context.Context, stage *domain.Stage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

// Delete soft deletes a stage by ID
func (r *stageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Stage{}, "id = ?", id).Error
}

// Reorder rewrites the sort order of an agency's stages to match the given
// ID sequence
func (r *stageRepositoryImpl) Reorder(ctx context.Context, agencyID uuid.UUID, stageIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range stageIDs {
			if err := tx.Model(&domain.Stage{}).
				Where("id = ? AND agency_id = ?", id, agencyID).
				Update("sort_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
