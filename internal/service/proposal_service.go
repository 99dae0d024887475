package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/metrics"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

// ProposalService defines the interface for proposal CRUD. Stage changes
// are not handled here; they go through TransitionService.
type ProposalService interface {
	CreateProposal(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error)
	GetProposal(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalResponse, error)
	GetProposalsByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.ProposalResponse, error)
	UpdateProposal(ctx context.Context, proposalID uuid.UUID, req *dto.UpdateProposalRequest) (*dto.ProposalResponse, error)
	DeleteProposal(ctx context.Context, proposalID uuid.UUID) error
	GetHistory(ctx context.Context, proposalID uuid.UUID) ([]*dto.ProposalHistoryResponse, error)
}

// proposalServiceImpl is the implementation of ProposalService
type proposalServiceImpl struct {
	proposalRepo    repository.ProposalRepository
	stageRepo       repository.StageRepository
	transactionRepo repository.TransactionRepository
	commissionRepo  repository.CommissionRepository
	historyRepo     repository.HistoryRepository
	cache           SummaryInvalidator
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewProposalService creates a new instance of ProposalService
func NewProposalService(
	proposalRepo repository.ProposalRepository,
	stageRepo repository.StageRepository,
	transactionRepo repository.TransactionRepository,
	commissionRepo repository.CommissionRepository,
	historyRepo repository.HistoryRepository,
	cache SummaryInvalidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) ProposalService {
	return &proposalServiceImpl{
		proposalRepo:    proposalRepo,
		stageRepo:       stageRepo,
		transactionRepo: transactionRepo,
		commissionRepo:  commissionRepo,
		historyRepo:     historyRepo,
		cache:           cache,
		metrics:         m,
		logger:          logger,
	}
}

// CreateProposal creates a proposal in the requested stage, or in the
// agency's first stage when none is given, and assigns the next sequential
// proposal number.
func (s *proposalServiceImpl) CreateProposal(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	userID, ok := ctx.Value("user_id").(uuid.UUID)
	if !ok {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}

	var stage *domain.Stage
	if req.StageID != nil {
		found, err := s.stageRepo.FindByID(ctx, *req.StageID)
		if err != nil || found.AgencyID != req.AgencyID {
			return nil, response.NewAppError(response.ErrCodeInvalidStage, "Stage not found for agency", "")
		}
		stage = found
	} else {
		stages, err := s.stageRepo.FindByAgencyID(ctx, req.AgencyID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list stages", err.Error())
		}
		if len(stages) == 0 {
			return nil, response.NewAppError(response.ErrCodeValidation, "Agency has no pipeline stages", "")
		}
		stage = stages[0]
	}

	number, err := s.proposalRepo.NextNumber(ctx, req.AgencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to assign proposal number", err.Error())
	}

	proposal := &domain.Proposal{
		AgencyID:        req.AgencyID,
		ClientID:        req.ClientID,
		CollaboratorID:  req.CollaboratorID,
		CreatedBy:       userID,
		StageID:         stage.ID,
		Title:           req.Title,
		DiscountPercent: req.DiscountPercent,
		Notes:           req.Notes,
		Number:          number,
	}
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create proposal", err.Error())
	}

	proposal.Stage = *stage
	s.metrics.IncrementProposalCreated()
	s.invalidateSummary(ctx, req.AgencyID)
	return dto.ToProposalResponse(proposal), nil
}

// GetProposal loads one proposal with its current stage
func (s *proposalServiceImpl) GetProposal(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load proposal", err.Error())
	}
	return dto.ToProposalResponse(proposal), nil
}

// GetProposalsByAgency lists an agency's proposals, newest first
func (s *proposalServiceImpl) GetProposalsByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.ProposalResponse, error) {
	proposals, err := s.proposalRepo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list proposals", err.Error())
	}

	responses := make([]*dto.ProposalResponse, 0, len(proposals))
	for _, proposal := range proposals {
		responses = append(responses, dto.ToProposalResponse(proposal))
	}
	return responses, nil
}

// UpdateProposal applies a partial update. StageID is deliberately not
// touchable here.
func (s *proposalServiceImpl) UpdateProposal(ctx context.Context, proposalID uuid.UUID, req *dto.UpdateProposalRequest) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load proposal", err.Error())
	}

	if req.ClientID != nil {
		proposal.ClientID = req.ClientID
	}
	if req.CollaboratorID != nil {
		proposal.CollaboratorID = req.CollaboratorID
	}
	if req.Title != nil {
		proposal.Title = *req.Title
	}
	if req.DiscountPercent != nil {
		proposal.DiscountPercent = *req.DiscountPercent
	}
	if req.Notes != nil {
		proposal.Notes = *req.Notes
	}

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update proposal", err.Error())
	}
	return dto.ToProposalResponse(proposal), nil
}

// DeleteProposal removes a proposal. Income transactions are cancelled and
// commission records deleted first so the ledgers never reference a
// missing proposal; line items and history rows go with the database
// cascade.
func (s *proposalServiceImpl) DeleteProposal(ctx context.Context, proposalID uuid.UUID) error {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load proposal", err.Error())
	}

	if cancelled, err := s.transactionRepo.CancelByProposalID(ctx, proposalID, domain.TransactionTypeIncome); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to cancel proposal transactions", err.Error())
	} else if cancelled > 0 {
		s.metrics.AddTransactionsCancelled(cancelled)
	}

	if deleted, err := s.commissionRepo.DeleteByProposalID(ctx, proposalID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete proposal commissions", err.Error())
	} else if deleted > 0 {
		s.metrics.AddCommissionsDeleted(deleted)
	}

	if err := s.proposalRepo.Delete(ctx, proposalID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete proposal", err.Error())
	}

	s.invalidateSummary(ctx, proposal.AgencyID)
	s.logger.Info("Proposal deleted",
		zap.String("proposal_id", proposalID.String()),
		zap.String("agency_id", proposal.AgencyID.String()),
	)
	return nil
}

// GetHistory returns a proposal's audit trail, newest first
func (s *proposalServiceImpl) GetHistory(ctx context.Context, proposalID uuid.UUID) ([]*dto.ProposalHistoryResponse, error) {
	entries, err := s.historyRepo.FindByProposalID(ctx, proposalID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load proposal history", err.Error())
	}

	responses := make([]*dto.ProposalHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.ToProposalHistoryResponse(entry))
	}
	return responses, nil
}

func (s *proposalServiceImpl) invalidateSummary(ctx context.Context, agencyID uuid.UUID) {
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
