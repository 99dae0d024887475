package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// AgencyRepository defines the interface for agency data access
type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	Update(ctx context.Context, agency *domain.Agency) error
}

// agencyRepositoryImpl is the GORM implementation of AgencyRepository
type agencyRepositoryImpl struct {
	db *gorm.DB
}

// NewAgencyRepository creates a new instance of AgencyRepository
func NewAgencyRepository(db *gorm.DB) AgencyRepository {
	return &agencyRepositoryImpl{db: db}
}

// Create creates a new agency
func (r *agencyRepositoryImpl) Create(ctx context.Context, agency *domain.Agency) error {
	return r.db.WithContext(ctx).Create(agency).Error
}

// FindByID finds an agency by its ID
func (r *agencyRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	var agency domain.Agency
	if err := r.db.WithContext(ctx).First(&agency, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agency, nil
}

// Update saves all agency fields
func (r *agencyRepositoryImpl) Update(ctx context.Context, agency *domain.Agency) error {
	return r.db.WithContext(ctx).Save(agency).Error
}
