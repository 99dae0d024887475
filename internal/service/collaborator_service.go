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

// CollaboratorService defines the interface for agency team management
type CollaboratorService interface {
	CreateCollaborator(ctx context.Context, req *dto.CreateCollaboratorRequest) (*dto.CollaboratorResponse, error)
	GetCollaboratorsByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.CollaboratorResponse, error)
	UpdateCollaborator(ctx context.Context, collaboratorID uuid.UUID, req *dto.UpdateCollaboratorRequest) (*dto.CollaboratorResponse, error)
	DeleteCollaborator(ctx context.Context, collaboratorID uuid.UUID) error
}

// collaboratorServiceImpl is the implementation of CollaboratorService
type collaboratorServiceImpl struct {
	collaboratorRepo repository.CollaboratorRepository
	agencyRepo       repository.AgencyRepository
}

// NewCollaboratorService creates a new instance of CollaboratorService
func NewCollaboratorService(
	collaboratorRepo repository.CollaboratorRepository,
	agencyRepo repository.AgencyRepository,
) CollaboratorService {
	return &collaboratorServiceImpl{
		collaboratorRepo: collaboratorRepo,
		agencyRepo:       agencyRepo,
	}
}

// CreateCollaborator registers an agency team member
func (s *collaboratorServiceImpl) CreateCollaborator(ctx context.Context, req *dto.CreateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	if _, err := s.agencyRepo.FindByID(ctx, req.AgencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Agency not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify agency", err.Error())
	}

	if _, err := s.collaboratorRepo.FindByAgencyAndUser(ctx, req.AgencyID, req.UserID); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User is already a collaborator of this agency", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing collaborator", err.Error())
	}

	collaborator := &domain.Collaborator{
		AgencyID:             req.AgencyID,
		UserID:               req.UserID,
		Name:                 req.Name,
		CommissionPercentage: req.CommissionPercentage,
		CommissionBase:       req.CommissionBase,
		Status:               domain.CollaboratorStatusActive,
	}
	if err := s.collaboratorRepo.Create(ctx, collaborator); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create collaborator", err.Error())
	}
	return dto.ToCollaboratorResponse(collaborator), nil
}

// GetCollaboratorsByAgency lists an agency's team members
func (s *collaboratorServiceImpl) GetCollaboratorsByAgency(ctx context.Context, agencyID uuid.UUID) ([]*dto.CollaboratorResponse, error) {
	collaborators, err := s.collaboratorRepo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list collaborators", err.Error())
	}

	responses := make([]*dto.CollaboratorResponse, 0, len(collaborators))
	for _, collaborator := range collaborators {
		responses = append(responses, dto.ToCollaboratorResponse(collaborator))
	}
	return responses, nil
}

// UpdateCollaborator applies a partial update to a collaborator's
// commission policy or status
func (s *collaboratorServiceImpl) UpdateCollaborator(ctx context.Context, collaboratorID uuid.UUID, req *dto.UpdateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	collaborator, err := s.collaboratorRepo.FindByID(ctx, collaboratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Collaborator not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load collaborator", err.Error())
	}

	if req.Name != nil {
		collaborator.Name = *req.Name
	}
	if req.CommissionPercentage != nil {
		collaborator.CommissionPercentage = *req.CommissionPercentage
	}
	if req.CommissionBase != nil {
		collaborator.CommissionBase = *req.CommissionBase
	}
	if req.Status != nil {
		collaborator.Status = *req.Status
	}

	if err := s.collaboratorRepo.Update(ctx, collaborator); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update collaborator", err.Error())
	}
	return dto.ToCollaboratorResponse(collaborator), nil
}

// DeleteCollaborator removes a collaborator
func (s *collaboratorServiceImpl) DeleteCollaborator(ctx context.Context, collaboratorID uuid.UUID) error {
	if _, err := s.collaboratorRepo.FindByID(ctx, collaboratorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Collaborator not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load collaborator", err.Error())
	}
	if err := s.collaboratorRepo.Delete(ctx, collaboratorID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete collaborator", err.Error())
	}
	return nil
}
