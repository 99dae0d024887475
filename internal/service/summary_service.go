package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

const (
	summaryCacheKeyPrefix = "pipeline_summary:"
	summaryCacheTTL       = 60 * time.Second
)

// SummaryService serves the per-stage pipeline aggregate for the kanban
// header. Results come from a short-lived Redis cache that every pipeline
// write invalidates; without Redis it falls back to direct queries.
type SummaryService interface {
	SummaryInvalidator
	PipelineSummary(ctx context.Context, agencyID uuid.UUID) (*dto.PipelineSummary, error)
}

// summaryServiceImpl is the implementation of SummaryService
type summaryServiceImpl struct {
	stageRepo    repository.StageRepository
	proposalRepo repository.ProposalRepository
	redis        *redis.Client
	logger       *zap.Logger
}

// NewSummaryService creates a new instance of SummaryService. The redis
// client may be nil.
func NewSummaryService(
	stageRepo repository.StageRepository,
	proposalRepo repository.ProposalRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) SummaryService {
	return &summaryServiceImpl{
		stageRepo:    stageRepo,
		proposalRepo: proposalRepo,
		redis:        redisClient,
		logger:       logger,
	}
}

// PipelineSummary returns proposal count and total value per stage
func (s *summaryServiceImpl) PipelineSummary(ctx context.Context, agencyID uuid.UUID) (*dto.PipelineSummary, error) {
	key := summaryCacheKeyPrefix + agencyID.String()

	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var cached dto.PipelineSummary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	summary, err := s.compute(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := s.redis.Set(ctx, key, raw, summaryCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache pipeline summary",
					zap.String("agency_id", agencyID.String()),
					zap.Error(err),
				)
			}
		}
	}
	return summary, nil
}

// InvalidateSummary drops the cached aggregate for an agency
func (s *summaryServiceImpl) InvalidateSummary(ctx context.Context, agencyID uuid.UUID) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, summaryCacheKeyPrefix+agencyID.String()).Err()
}

func (s *summaryServiceImpl) compute(ctx context.Context, agencyID uuid.UUID) (*dto.PipelineSummary, error) {
	stages, err := s.stageRepo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list stages", err.Error())
	}

	aggregates, err := s.proposalRepo.AggregateByStage(ctx, agencyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate proposals", err.Error())
	}

	byStage := make(map[uuid.UUID]*repository.StageAggregate, len(aggregates))
	for _, row := range aggregates {
		byStage[row.StageID] = row
	}

	summary := &dto.PipelineSummary{
		AgencyID: agencyID,
		Stages:   make([]*dto.StageSummary, 0, len(stages)),
	}
	for _, stage := range stages {
		entry := &dto.StageSummary{
			StageID:   stage.ID,
			StageName: stage.Name,
			IsClosed:  stage.IsClosed,
			IsLost:    stage.IsLost,
		}
		if row, ok := byStage[stage.ID]; ok {
			entry.ProposalCount = row.ProposalCount
			entry.TotalValue = row.TotalValue
		}
		summary.Stages = append(summary.Stages, entry)
	}

	return summary, nil
}
