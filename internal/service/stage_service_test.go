package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/response"
)

func newStageService(stageRepo *MockStageRepository, agencyRepo *MockAgencyRepository, proposalRepo *MockProposalRepository) StageService {
	return NewStageService(stageRepo, agencyRepo, proposalRepo, zap.NewNop())
}

func TestClosedWonStage_PinnedStageWins(t *testing.T) {
	agencyID := uuid.New()
	pinned := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		Name:      "Fechado",
		IsClosed:  true,
		SortOrder: 5,
	}
	other := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		Name:      "Fechado (antigo)",
		IsClosed:  true,
		SortOrder: 1,
	}

	agencyRepo := &MockAgencyRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
			return &domain.Agency{
				BaseModel:        domain.BaseModel{ID: agencyID},
				ClosedWonStageID: &pinned.ID,
			}, nil
		},
	}
	stageRepo := &MockStageRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Stage, error) {
			if id == pinned.ID {
				return pinned, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		FindClosedByAgencyIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Stage, error) {
			return []*domain.Stage{other, pinned}, nil
		},
	}
	svc := newStageService(stageRepo, agencyRepo, &MockProposalRepository{})

	stage, err := svc.ClosedWonStage(context.Background(), agencyID)
	require.NoError(t, err)
	assert.Equal(t, pinned.ID, stage.ID)
}

func TestClosedWonStage_FallsBackToFirstClosed(t *testing.T) {
	agencyID := uuid.New()
	first := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		Name:      "Ganho",
		IsClosed:  true,
		SortOrder: 3,
	}

	agencyRepo := &MockAgencyRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
			return &domain.Agency{BaseModel: domain.BaseModel{ID: agencyID}}, nil
		},
	}
	stageRepo := &MockStageRepository{
		FindClosedByAgencyIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Stage, error) {
			return []*domain.Stage{first}, nil
		},
	}
	svc := newStageService(stageRepo, agencyRepo, &MockProposalRepository{})

	stage, err := svc.ClosedWonStage(context.Background(), agencyID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stage.ID)
}

func TestClosedWonStage_InvalidPinFallsBack(t *testing.T) {
	agencyID := uuid.New()
	// the pinned stage was deleted; a closed stage still exists
	danglingID := uuid.New()
	fallback := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		IsClosed:  true,
	}

	agencyRepo := &MockAgencyRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
			return &domain.Agency{
				BaseModel:        domain.BaseModel{ID: agencyID},
				ClosedWonStageID: &danglingID,
			}, nil
		},
	}
	stageRepo := &MockStageRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Stage, error) {
			return nil, gorm.ErrRecordNotFound
		},
		FindClosedByAgencyIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Stage, error) {
			return []*domain.Stage{fallback}, nil
		},
	}
	svc := newStageService(stageRepo, agencyRepo, &MockProposalRepository{})

	stage, err := svc.ClosedWonStage(context.Background(), agencyID)
	require.NoError(t, err)
	assert.Equal(t, fallback.ID, stage.ID)
}

func TestClosedWonStage_NoClosedStage(t *testing.T) {
	agencyRepo := &MockAgencyRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
			return &domain.Agency{BaseModel: domain.BaseModel{ID: id}}, nil
		},
	}
	stageRepo := &MockStageRepository{
		FindClosedByAgencyIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Stage, error) {
			return nil, nil
		},
	}
	svc := newStageService(stageRepo, agencyRepo, &MockProposalRepository{})

	_, err := svc.ClosedWonStage(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestDeleteStage_BlockedWhileInUse(t *testing.T) {
	stageID := uuid.New()

	stageRepo := &MockStageRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Stage, error) {
			return &domain.Stage{BaseModel: domain.BaseModel{ID: stageID}}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			t.Fatal("stage holding proposals must not be deleted")
			return nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByStageIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Proposal, error) {
			return []*domain.Proposal{{BaseModel: domain.BaseModel{ID: uuid.New()}}}, nil
		},
	}
	svc := newStageService(stageRepo, &MockAgencyRepository{}, proposalRepo)

	err := svc.DeleteStage(context.Background(), stageID)
	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestDeleteStage_EmptyStage(t *testing.T) {
	stageID := uuid.New()

	deleted := false
	stageRepo := &MockStageRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Stage, error) {
			return &domain.Stage{BaseModel: domain.BaseModel{ID: stageID}}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := newStageService(stageRepo, &MockAgencyRepository{}, &MockProposalRepository{})

	require.NoError(t, svc.DeleteStage(context.Background(), stageID))
	assert.True(t, deleted)
}

func TestCreateStage_AgencyNotFound(t *testing.T) {
	agencyRepo := &MockAgencyRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newStageService(&MockStageRepository{}, agencyRepo, &MockProposalRepository{})

	_, err := svc.CreateStage(context.Background(), &dto.CreateStageRequest{
		AgencyID: uuid.New(),
		Name:     "Prospecção",
	})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestReorderStages(t *testing.T) {
	agencyID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var reordered []uuid.UUID
	stageRepo := &MockStageRepository{
		ReorderFunc: func(ctx context.Context, aID uuid.UUID, stageIDs []uuid.UUID) error {
			reordered = stageIDs
			return nil
		},
		FindByAgencyIDFunc: func(ctx context.Context, aID uuid.UUID) ([]*domain.Stage, error) {
			stages := make([]*domain.Stage, len(ids))
			for i, id := range ids {
				stages[i] = &domain.Stage{
					BaseModel: domain.BaseModel{ID: id},
					AgencyID:  agencyID,
					SortOrder: i,
				}
			}
			return stages, nil
		},
	}
	svc := newStageService(stageRepo, &MockAgencyRepository{}, &MockProposalRepository{})

	resp, err := svc.ReorderStages(context.Background(), agencyID, &dto.ReorderStagesRequest{StageIDs: ids})
	require.NoError(t, err)
	assert.Equal(t, ids, reordered)
	require.Len(t, resp, 3)
	assert.Equal(t, ids[0], resp[0].ID)
}
