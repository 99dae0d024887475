package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

// AgencyService defines the interface for agency tenant management
type AgencyService interface {
	CreateAgency(ctx context.Context, req *dto.CreateAgencyRequest) (*dto.AgencyResponse, error)
	GetAgency(ctx context.Context, agencyID uuid.UUID) (*dto.AgencyResponse, error)
	UpdateAgency(ctx context.Context, agencyID uuid.UUID, req *dto.UpdateAgencyRequest) (*dto.AgencyResponse, error)
}

// agencyServiceImpl is the implementation of AgencyService
type agencyServiceImpl struct {
	agencyRepo repository.AgencyRepository
	stageRepo  repository.StageRepository
}

// NewAgencyService creates a new instance of AgencyService
func NewAgencyService(
	agencyRepo repository.AgencyRepository,
	stageRepo repository.StageRepository,
) AgencyService {
	return &agencyServiceImpl{
		agencyRepo: agencyRepo,
		stageRepo:  stageRepo,
	}
}

// CreateAgency registers a new agency tenant
func (s *agencyServiceImpl) CreateAgency(ctx context.Context, req *dto.CreateAgencyRequest) (*dto.AgencyResponse, error) {
	agency := &domain.Agency{
		Name: req.Name,
	}
	if err := s.agencyRepo.Create(ctx, agency); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create agency", err.Error())
	}
	return dto.ToAgencyResponse(agency), nil
}

// GetAgency loads an agency by ID
func (s *agencyServiceImpl) GetAgency(ctx context.Context, agencyID uuid.UUID) (*dto.AgencyResponse, error) {
	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Agency not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load agency", err.Error())
	}
	return dto.ToAgencyResponse(agency), nil
}

// UpdateAgency applies a partial update. Pinning a closed-won stage requires
// the stage to belong to the agency and carry the is_closed flag.
func (s *agencyServiceImpl) UpdateAgency(ctx context.Context, agencyID uuid.UUID, req *dto.UpdateAgencyRequest) (*dto.AgencyResponse, error) {
	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Agency not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load agency", err.Error())
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.ClosedWonStageID != nil {
		stage, err := s.stageRepo.FindByID(ctx, *req.ClosedWonStageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeInvalidStage, "Stage not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load stage", err.Error())
		}
		if stage.AgencyID != agency.ID {
			return nil, response.NewAppError(response.ErrCodeInvalidStage, "Stage belongs to another agency", "")
		}
		if !stage.IsClosed {
			return nil, response.NewAppError(response.ErrCodeInvalidStage, "Closed-won stage must have the is_closed flag", "")
		}
		agency.ClosedWonStageID = req.ClosedWonStageID
	}

	if err := s.agencyRepo.Update(ctx, agency); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update agency", err.Error())
	}
	return dto.ToAgencyResponse(agency), nil
}
