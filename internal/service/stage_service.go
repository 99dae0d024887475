package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

// StageService defines the interface for pipeline stage management
type StageService interface {
	CreateStage(ctx context.Context, req *dto.CreateStageRequest) (*dto.StageResponse, error)
	GetStagesByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.StageResponse, error)
	UpdateStage(ctx context.Context, stageID uuid.UUID, req *dto.UpdateStageRequest) (*dto.StageResponse, error)
	DeleteStage(ctx context.Context, stageID uuid.UUID) error
	ReorderStages(ctx context.Context, agencyID uuid.UUID, req *dto.ReorderStagesRequest) ([]*dto.StageResponse, error)
	ClosedWonStage(ctx context.Context, agencyID uuid.UUID) (*domain.Stage, error)
}

// stageServiceImpl is the implementation of StageService
type stageServiceImpl struct {
	stageRepo    repository.StageRepository
	agencyRepo   repository.AgencyRepository
	proposalRepo repository.ProposalRepository
	logger       *zap.Logger
}

// NewStageService creates a new instance of StageService
func NewStageService(
	stageRepo repository.StageRepository,
	agencyRepo repository.AgencyRepository,
	proposalRepo repository.ProposalRepository,
	logger *zap.Logger,
) StageService {
	return &stageServiceImpl{
		stageRepo:    stageRepo,
		agencyRepo:   agencyRepo,
		proposalRepo: proposalRepo,
		logger:       logger,
	}
}

// CreateStage creates a new pipeline stage for an agency
func (s *stageServiceImpl) CreateStage(ctx context.Context, req *dto.CreateStageRequest) (*dto.StageResponse, error) {
	if _, err := s.agencyRepo.FindByID(ctx, req.AgencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Agency not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify agency", err.Error())
	}

	stage := &domain.Stage{
		AgencyID:  req.AgencyID,
		Name:      req.Name,
		Color:     req.Color,
		IsClosed:  req.IsClosed,
		IsLost:    req.IsLost,
		SortOrder: req.SortOrder,
	}
	if err := s.stageRepo.Create(ctx, stage); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create stage", err.Error())
	}
	return dto.ToStageResponse(stage), nil
}

// GetStagesByAgency lists an agency's stages in pipeline order
func (s *stageServiceImpl) GetStagesByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.StageResponse, error) {
	stages, err := s.stageRepo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list stages", err.Error())
	}

	responses := make([]*dto.StageResponse, 0, len(stages))
	for _, stage := range stages {
		responses = append(responses, dto.ToStageResponse(stage))
	}
	return responses, nil
}

// UpdateStage applies a partial update to a stage
func (s *stageServiceImpl) UpdateStage(ctx context.Context, stageID uuid.UUID, req *dto.UpdateStageRequest) (*dto.StageResponse, error) {
	stage, err := s.stageRepo.FindByID(ctx, stageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Stage not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load stage", err.Error())
	}

	if req.Name != nil {
		stage.Name = *req.Name
	}
	if req.Color != nil {
		stage.Color = *req.Color
	}
	if req.IsClosed != nil {
		stage.IsClosed = *req.IsClosed
	}
	if req.IsLost != nil {
		stage.IsLost = *req.IsLost
	}
	if req.SortOrder != nil {
		stage.SortOrder = *req.SortOrder
	}

	if err := s.stageRepo.Update(ctx, stage); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update stage", err.Error())
	}
	return dto.ToStageResponse(stage), nil
}

// DeleteStage removes a stage. Stages still holding proposals cannot be
// deleted.
func (s *stageServiceImpl) DeleteStage(ctx context.Context, stageID uuid.UUID) error {
	if _, err := s.stageRepo.FindByID(ctx, stageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Stage not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load stage", err.Error())
	}

	proposals, err := s.proposalRepo.FindByStageID(ctx, stageID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check stage usage", err.Error())
	}
	if len(proposals) > 0 {
		return response.NewAppError(response.ErrCodeValidation,
			"Stage still holds proposals and cannot be deleted", "")
	}

	if err := s.stageRepo.Delete(ctx, stageID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete stage", err.Error())
	}
	return nil
}

// ReorderStages rewrites the agency's stage order after a column drag
func (s *stageServiceImpl) ReorderStages(ctx context.Context, agencyID uuid.UUID, req *dto.ReorderStagesRequest) ([]*dto.StageResponse, error) {
	if err := s.stageRepo.Reorder(ctx, agencyID, req.StageIDs); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reorder stages", err.Error())
	}
	return s.GetStagesByAgency(ctx, agencyID)
}

// ClosedWonStage resolves the agency's canonical closed-won stage: the one
// pinned on the agency when configured, otherwise the first is_closed
// stage by sort order. More than one closed stage without a pin is a
// configuration ambiguity and is logged as a warning.
func (s *stageServiceImpl) ClosedWonStage(ctx context.Context, agencyID uuid.UUID) (*domain.Stage, error) {
	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Agency not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load agency", err.Error())
	}

	if agency.ClosedWonStageID != nil {
		stage, err := s.stageRepo.FindByID(ctx, *agency.ClosedWonStageID)
		if err == nil && stage.AgencyID == agencyID && stage.IsClosed {
			return stage, nil
		}
		s.logger.Warn("Configured closed-won stage is invalid, falling back to scan",
			zap.String("agency_id", agencyID.String()),
			zap.String("stage_id", agency.ClosedWonStageID.String()),
		)
	}

	closed, err := s.stageRepo.FindClosedByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list closed stages", err.Error())
	}
	if len(closed) == 0 {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Agency has no closed stage configured", "")
	}
	if len(closed) > 1 {
		s.logger.Warn("Agency has multiple closed stages and no pinned closed-won stage",
			zap.String("agency_id", agencyID.String()),
			zap.Int("closed_stages", len(closed)),
		)
	}
	return closed[0], nil
}
