package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/repository"
)

func TestPipelineSummary(t *testing.T) {
	agencyID := uuid.New()
	stageA := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		Name:      "Em negociação",
		SortOrder: 0,
	}
	stageB := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		Name:      "Fechado",
		IsClosed:  true,
		SortOrder: 1,
	}

	stageRepo := &MockStageRepository{
		FindByAgencyIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Stage, error) {
			return []*domain.Stage{stageA, stageB}, nil
		},
	}
	proposalRepo := &MockProposalRepository{
		AggregateByStageFunc: func(ctx context.Context, id uuid.UUID) ([]*repository.StageAggregate, error) {
			return []*repository.StageAggregate{
				{StageID: stageA.ID, ProposalCount: 3, TotalValue: 4500},
			}, nil
		},
	}
	svc := NewSummaryService(stageRepo, proposalRepo, nil, zap.NewNop())

	summary, err := svc.PipelineSummary(context.Background(), agencyID)
	require.NoError(t, err)

	assert.Equal(t, agencyID, summary.AgencyID)
	require.Len(t, summary.Stages, 2)

	assert.Equal(t, stageA.ID, summary.Stages[0].StageID)
	assert.Equal(t, int64(3), summary.Stages[0].ProposalCount)
	assert.Equal(t, float64(4500), summary.Stages[0].TotalValue)

	// stages without proposals still appear, zeroed
	assert.Equal(t, stageB.ID, summary.Stages[1].StageID)
	assert.True(t, summary.Stages[1].IsClosed)
	assert.Equal(t, int64(0), summary.Stages[1].ProposalCount)
	assert.Equal(t, float64(0), summary.Stages[1].TotalValue)
}

func TestInvalidateSummary_NoRedis(t *testing.T) {
	svc := NewSummaryService(&MockStageRepository{}, &MockProposalRepository{}, nil, zap.NewNop())
	assert.NoError(t, svc.InvalidateSummary(context.Background(), uuid.New()))
}
