package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// CollaboratorRepository defines the interface for collaborator data access
type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *domain.Collaborator) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Collaborator, error)
	FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Collaborator, error)
	FindByAgencyAndUser(ctx context.Context, agencyID, userID uuid.UUID) (*domain.Collaborator, error)
	Update(ctx context.Context, collaborator *domain.Collaborator) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// collaboratorRepositoryImpl is the GORM implementation of
// CollaboratorRepository
type collaboratorRepositoryImpl struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new instance of CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepositoryImpl{db: db}
}

// Create creates a new collaborator
func (r *collaboratorRepositoryImpl) Create(ctx context.Context, collaborator *domain.Collaborator) error {
	return r.db.WithContext(ctx).Create(collaborator).Error
}

// FindByID finds a collaborator by its ID
func (r *collaboratorRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Collaborator, error) {
	var collaborator domain.Collaborator
	if err := r.db.WithContext(ctx).First(&collaborator, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// FindByAgencyID finds all collaborators of an agency
func (r *collaboratorRepositoryImpl) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Collaborator, error) {
	var collaborators []*domain.Collaborator
	if err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("name ASC").
		Find(&collaborators).Error; err != nil {
		return nil, err
	}
	return collaborators, nil
}

// FindByAgencyAndUser finds the collaborator record of a user within an
// agency
func (r *collaboratorRepositoryImpl) FindByAgencyAndUser(ctx context.Context, agencyID, userID uuid.UUID) (*domain.Collaborator, error) {
	var collaborator domain.Collaborator
	if err := r.db.WithContext(ctx).
		Where("agency_id = ? AND user_id = ?", agencyID, userID).
		First(&collaborator).Error; err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// Update saves all collaborator fields
func (r *collaboratorRepositoryImpl) Update(ctx context.Context, collaborator *domain.Collaborator) error {
	return r.db.WithContext(ctx).Save(collaborator).Error
}

// Delete soft deletes a collaborator by ID
func (r *collaboratorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Collaborator{}, "id = ?", id).Error
}
