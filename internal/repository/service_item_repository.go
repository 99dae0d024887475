package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

// ServiceItemRepository defines the interface for line item data access
type ServiceItemRepository interface {
	Create(ctx context.Context, item *domain.ServiceItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceItem, error)
	FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ServiceItem, error)
	Update(ctx context.Context, item *domain.ServiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ProjectCalendarDates(ctx context.Context, proposalID uuid.UUID) error
	ClearCalendarDates(ctx context.Context, proposalID uuid.UUID) error
}

// serviceItemRepositoryImpl is the GORM implementation of
// ServiceItemRepository
type serviceItemRepositoryImpl struct {
	db *gorm.DB
}

// NewServiceItemRepository creates a new instance of ServiceItemRepository
func NewServiceItemRepository(db *gorm.DB) ServiceItemRepository {
	return &serviceItemRepositoryImpl{db: db}
}

// Create creates a new line item
func (r *serviceItemRepositoryImpl) Create(ctx context.Context, item *domain.ServiceItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID finds a line item by its ID
func (r *serviceItemRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceItem, error) {
	var item domain.ServiceItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByProposalID finds all line items of a proposal
func (r *serviceItemRepositoryImpl) FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ServiceItem, error) {
	var items []*domain.ServiceItem
	if err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves all line item fields
func (r *serviceItemRepositoryImpl) Update(ctx context.Context, item *domain.ServiceItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete soft deletes a line item by ID
func (r *serviceItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceItem{}, "id = ?", id).Error
}

// ProjectCalendarDates copies each line's travel start date into its
// calendar projection column. Called when a proposal closes.
func (r *serviceItemRepositoryImpl) ProjectCalendarDates(ctx context.Context, proposalID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.ServiceItem{}).
		Where("proposal_id = ?", proposalID).
		Update("calendar_date", gorm.Expr("start_date")).Error
}

// ClearCalendarDates removes the calendar projection from every line of a
// proposal. Called when a proposal reopens.
func (r *serviceItemRepositoryImpl) ClearCalendarDates(ctx context.Context, proposalID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.ServiceItem{}).
		Where("proposal_id = ?", proposalID).
		Update("calendar_date", nil).Error
}
