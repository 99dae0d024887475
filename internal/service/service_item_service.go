package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

// ServiceItemService defines the interface for the service ledger: line
// item CRUD plus the totals aggregation the orchestrator and the UI both
// consume.
type ServiceItemService interface {
	CreateItem(ctx context.Context, req *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error)
	GetItemsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.ServiceItemResponse, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Totals(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalTotals, error)
}

// serviceItemServiceImpl is the implementation of ServiceItemService
type serviceItemServiceImpl struct {
	itemRepo     repository.ServiceItemRepository
	proposalRepo repository.ProposalRepository
	cache        SummaryInvalidator
	logger       *zap.Logger
}

// NewServiceItemService creates a new instance of ServiceItemService
func NewServiceItemService(
	itemRepo repository.ServiceItemRepository,
	proposalRepo repository.ProposalRepository,
	cache SummaryInvalidator,
	logger *zap.Logger,
) ServiceItemService {
	return &serviceItemServiceImpl{
		itemRepo:     itemRepo,
		proposalRepo: proposalRepo,
		cache:        cache,
		logger:       logger,
	}
}

// CreateItem adds a line item to a proposal
func (s *serviceItemServiceImpl) CreateItem(ctx context.Context, req *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, req.ProposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify proposal", err.Error())
	}

	var details datatypes.JSON
	if req.Details != nil {
		raw, err := json.Marshal(req.Details)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid details payload", err.Error())
		}
		details = raw
	}

	item := &domain.ServiceItem{
		ProposalID:      req.ProposalID,
		Type:            req.Type,
		Description:     req.Description,
		Value:           req.Value,
		CommissionType:  req.CommissionType,
		CommissionValue: req.CommissionValue,
		Details:         details,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create service item", err.Error())
	}

	s.invalidateSummary(ctx, proposal.AgencyID)
	return dto.ToServiceItemResponse(item), nil
}

// GetItemsByProposal lists a proposal's line items
func (s *serviceItemServiceImpl) GetItemsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.ServiceItemResponse, error) {
	items, err := s.itemRepo.FindByProposalID(ctx, proposalID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list service items", err.Error())
	}

	responses := make([]*dto.ServiceItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.ToServiceItemResponse(item))
	}
	return responses, nil
}

// UpdateItem applies a partial update to a line item
func (s *serviceItemServiceImpl) UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Service item not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load service item", err.Error())
	}

	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Value != nil {
		item.Value = *req.Value
	}
	if req.CommissionType != nil {
		item.CommissionType = *req.CommissionType
	}
	if req.CommissionValue != nil {
		item.CommissionValue = *req.CommissionValue
	}
	if req.Details != nil {
		raw, err := json.Marshal(req.Details)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid details payload", err.Error())
		}
		item.Details = raw
	}
	if req.StartDate != nil {
		item.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		item.EndDate = req.EndDate
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update service item", err.Error())
	}

	if proposal, err := s.proposalRepo.FindByID(ctx, item.ProposalID); err == nil {
		s.invalidateSummary(ctx, proposal.AgencyID)
	}
	return dto.ToServiceItemResponse(item), nil
}

// DeleteItem removes a line item
func (s *serviceItemServiceImpl) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Service item not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load service item", err.Error())
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete service item", err.Error())
	}

	if proposal, err := s.proposalRepo.FindByID(ctx, item.ProposalID); err == nil {
		s.invalidateSummary(ctx, proposal.AgencyID)
	}
	return nil
}

// Totals aggregates a proposal's line items: value is the sum of line
// values, commission sums each line's contribution (value * pct / 100 for
// percentage lines, the raw amount for fixed lines). Negative numbers are
// treated as 0. Always recomputed from the current rows.
func (s *serviceItemServiceImpl) Totals(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalTotals, error) {
	items, err := s.itemRepo.FindByProposalID(ctx, proposalID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load service items", err.Error())
	}

	value := decimal.Zero
	commission := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for _, item := range items {
		v := decimal.NewFromFloat(item.Value)
		if v.IsNegative() {
			v = decimal.Zero
		}
		cv := decimal.NewFromFloat(item.CommissionValue)
		if cv.IsNegative() {
			cv = decimal.Zero
		}

		value = value.Add(v)
		if item.CommissionType == domain.CommissionTypePercentage {
			commission = commission.Add(v.Mul(cv).Div(hundred))
		} else {
			commission = commission.Add(cv)
		}
	}

	totalValue, _ := value.Round(2).Float64()
	totalCommission, _ := commission.Round(2).Float64()
	return &dto.ProposalTotals{Value: totalValue, Commission: totalCommission}, nil
}

func (s *serviceItemServiceImpl) invalidateSummary(ctx context.Context, agencyID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSummary(ctx, agencyID); err != nil {
		s.logger.Warn("Failed to invalidate pipeline summary cache",
			zap.String("agency_id", agencyID.String()),
			zap.Error(err),
		)
	}
}
