package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/metrics"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/response"
)

// TransitionService validates and executes every pipeline stage change and
// drives the financial side effects that keep the ledgers consistent with
// the proposal's stage.
//
// Classification depends only on the is_closed flags of the two stages:
// equal flags is a neutral move, open to closed is a close (the caller must
// supply a financial choice), closed to open is a reopen (the reversal
// always runs). The stage update and its audit entry commit in one
// database transaction; ledger side effects run after that commit and are
// best effort: a failed step is reported as a warning, never rolled back
// into the stage change.
type TransitionService interface {
	Transition(ctx context.Context, proposalID uuid.UUID, req *dto.TransitionRequest) (*dto.TransitionResult, error)
}

// SummaryInvalidator drops a cached pipeline summary after a write
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context, agencyID uuid.UUID) error
}

// transitionServiceImpl is the implementation of TransitionService
type transitionServiceImpl struct {
	db               *gorm.DB
	proposalRepo     repository.ProposalRepository
	stageRepo        repository.StageRepository
	itemRepo         repository.ServiceItemRepository
	collaboratorRepo repository.CollaboratorRepository
	transactionRepo  repository.TransactionRepository
	commissionRepo   repository.CommissionRepository
	historyRepo      repository.HistoryRepository
	items            ServiceItemService
	cache            SummaryInvalidator
	locks            *keyedMutex
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewTransitionService creates a new instance of TransitionService
func NewTransitionService(
	db *gorm.DB,
	proposalRepo repository.ProposalRepository,
	stageRepo repository.StageRepository,
	itemRepo repository.ServiceItemRepository,
	collaboratorRepo repository.CollaboratorRepository,
	transactionRepo repository.TransactionRepository,
	commissionRepo repository.CommissionRepository,
	historyRepo repository.HistoryRepository,
	items ServiceItemService,
	cache SummaryInvalidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) TransitionService {
	return &transitionServiceImpl{
		db:               db,
		proposalRepo:     proposalRepo,
		stageRepo:        stageRepo,
		itemRepo:         itemRepo,
		collaboratorRepo: collaboratorRepo,
		transactionRepo:  transactionRepo,
		commissionRepo:   commissionRepo,
		historyRepo:      historyRepo,
		items:            items,
		cache:            cache,
		locks:            newKeyedMutex(),
		metrics:          m,
		logger:           logger,
	}
}

// Transition moves a proposal to another stage. Validation failures
// (unknown or cross-agency stage, missing financial choice on a close)
// reject before any mutation.
func (s *transitionServiceImpl) Transition(ctx context.Context, proposalID uuid.UUID, req *dto.TransitionRequest) (*dto.TransitionResult, error) {
	userID, ok := ctx.Value("user_id").(uuid.UUID)
	if !ok {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}

	// One transition at a time per proposal
	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load proposal", err.Error())
	}

	fromStage, err := s.stageRepo.FindByID(ctx, proposal.StageID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidStage, "Current stage not found", proposal.StageID.String())
	}

	toStage, err := s.stageRepo.FindByID(ctx, req.ToStageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInvalidStage, "Target stage not found", req.ToStageID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load target stage", err.Error())
	}

	if fromStage.AgencyID != proposal.AgencyID || toStage.AgencyID != proposal.AgencyID {
		return nil, response.NewAppError(response.ErrCodeInvalidStage, "Stage belongs to another agency", "")
	}

	result := &dto.TransitionResult{
		FromStageID: fromStage.ID,
		ToStageID:   toStage.ID,
	}

	// Same stage: nothing to do, no history entry
	if fromStage.ID == toStage.ID {
		result.Kind = dto.TransitionKindNone
		result.Proposal = dto.ToProposalResponse(proposal)
		return result, nil
	}

	result.Kind = classify(fromStage, toStage)

	var choice dto.FinancialChoice
	if result.Kind == dto.TransitionKindClose {
		if req.FinancialChoice == nil {
			return nil, response.NewAppError(response.ErrCodeMissingFinancialChoice,
				"A financial choice (add or skip) is required to close a proposal", "")
		}
		choice = *req.FinancialChoice
	}

	var totals *dto.ProposalTotals
	if result.Kind == dto.TransitionKindClose {
		totals, err = s.items.Totals(ctx, proposalID)
		if err != nil {
			return nil, err
		}
		result.Totals = totals
	}

	// Stage update and audit entry commit together; everything past this
	// point is best-effort and never rolls the stage change back
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.proposalRepo.SetStage(ctx, tx, proposalID, toStage.ID); err != nil {
			return err
		}
		entry := &domain.ProposalHistory{
			ProposalID:  proposalID,
			UserID:      userID,
			Action:      domain.HistoryActionStageChanged,
			Description: fmt.Sprintf("Proposal moved from %q to %q", fromStage.Name, toStage.Name),
			OldValue:    fromStage.Name,
			NewValue:    toStage.Name,
		}
		return s.historyRepo.Append(ctx, tx, entry)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to change proposal stage", err.Error())
	}

	proposal.StageID = toStage.ID
	proposal.Stage = *toStage
	result.Proposal = dto.ToProposalResponse(proposal)

	switch result.Kind {
	case dto.TransitionKindClose:
		s.executeClose(ctx, proposal, toStage, totals, choice, userID, result)
	case dto.TransitionKindReopen:
		s.executeReopen(ctx, proposal, result)
	}

	s.metrics.IncrementTransition(string(result.Kind))
	s.invalidateSummary(ctx, proposal.AgencyID)

	s.logger.Info("Proposal stage changed",
		zap.String("proposal_id", proposalID.String()),
		zap.String("from_stage", fromStage.Name),
		zap.String("to_stage", toStage.Name),
		zap.String("kind", string(result.Kind)),
		zap.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

// classify determines the transition kind from the is_closed flags alone
func classify(from, to *domain.Stage) dto.TransitionKind {
	switch {
	case from.IsClosed == to.IsClosed:
		return dto.TransitionKindNeutral
	case !from.IsClosed && to.IsClosed:
		return dto.TransitionKindClose
	default:
		return dto.TransitionKindReopen
	}
}

// executeClose runs the close side effects: calendar projection, income
// transaction and commission creation. Each step failure becomes a warning
// on the result.
func (s *transitionServiceImpl) executeClose(ctx context.Context, proposal *domain.Proposal, toStage *domain.Stage, totals *dto.ProposalTotals, choice dto.FinancialChoice, userID uuid.UUID, result *dto.TransitionResult) {
	if err := s.itemRepo.ProjectCalendarDates(ctx, proposal.ID); err != nil {
		s.warn(result, "calendar_projection", proposal.ID, err)
	}

	if choice != dto.FinancialChoiceAdd || totals.Value <= 0 {
		return
	}

	now := time.Now()

	// Skip creation when an active transaction already exists, so retrying
	// a partially failed close cannot duplicate it
	active, err := s.transactionRepo.HasActiveByProposalID(ctx, proposal.ID)
	if err != nil {
		s.warn(result, "transaction_lookup", proposal.ID, err)
	} else if !active {
		transaction := &domain.FinancialTransaction{
			AgencyID:    proposal.AgencyID,
			ProposalID:  proposal.ID,
			Type:        domain.TransactionTypeIncome,
			Status:      domain.TransactionStatusPending,
			Description: fmt.Sprintf("Proposal #%d - %s", proposal.Number, proposal.Title),
			TotalValue:  totals.Value,
			ProfitValue: totals.Commission,
			LaunchDate:  now,
		}
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			s.warn(result, "transaction_create", proposal.ID, err)
		} else {
			s.metrics.IncrementTransactionCreated()
			result.Transaction = dto.ToTransactionResponse(transaction)
		}
	}

	collaborator := s.resolveCollaborator(ctx, proposal, userID)
	if collaborator == nil {
		return
	}

	// Check-then-create keeps the commission write idempotent under retry
	exists, err := s.commissionRepo.ExistsByProposalID(ctx, proposal.ID)
	if err != nil {
		s.warn(result, "commission_lookup", proposal.ID, err)
		return
	}
	if exists {
		return
	}

	record := &domain.CommissionRecord{
		CollaboratorID:       collaborator.ID,
		ProposalID:           proposal.ID,
		SaleValue:            totals.Value,
		ProfitValue:          totals.Commission,
		CommissionPercentage: collaborator.CommissionPercentage,
		CommissionBase:       collaborator.CommissionBase,
		CommissionAmount:     CommissionAmount(collaborator, totals),
		PeriodMonth:          int(now.Month()),
		PeriodYear:           now.Year(),
	}
	if err := s.commissionRepo.Create(ctx, record); err != nil {
		s.warn(result, "commission_create", proposal.ID, err)
		return
	}
	s.metrics.IncrementCommissionCreated()
	result.Commission = dto.ToCommissionResponse(record)
}

// executeReopen reverses the close side effects: calendar projection is
// cleared, income transactions are cancelled (kept), commission records
// are deleted.
func (s *transitionServiceImpl) executeReopen(ctx context.Context, proposal *domain.Proposal, result *dto.TransitionResult) {
	if err := s.itemRepo.ClearCalendarDates(ctx, proposal.ID); err != nil {
		s.warn(result, "calendar_clear", proposal.ID, err)
	}

	cancelled, err := s.transactionRepo.CancelByProposalID(ctx, proposal.ID, domain.TransactionTypeIncome)
	if err != nil {
		s.warn(result, "transaction_cancel", proposal.ID, err)
	} else if cancelled > 0 {
		s.metrics.AddTransactionsCancelled(cancelled)
	}

	deleted, err := s.commissionRepo.DeleteByProposalID(ctx, proposal.ID)
	if err != nil {
		s.warn(result, "commission_delete", proposal.ID, err)
	} else if deleted > 0 {
		s.metrics.AddCommissionsDeleted(deleted)
	}
}

// resolveCollaborator picks who earns the commission: the proposal's
// assigned collaborator when set, otherwise the acting user's collaborator
// record, otherwise nobody.
func (s *transitionServiceImpl) resolveCollaborator(ctx context.Context, proposal *domain.Proposal, userID uuid.UUID) *domain.Collaborator {
	if proposal.CollaboratorID != nil {
		collaborator, err := s.collaboratorRepo.FindByID(ctx, *proposal.CollaboratorID)
		if err == nil {
			return collaborator
		}
		s.logger.Warn("Assigned collaborator not found",
			zap.String("proposal_id", proposal.ID.String()),
			zap.String("collaborator_id", proposal.CollaboratorID.String()),
			zap.Error(err),
		)
	}

	collaborator, err := s.collaboratorRepo.FindByAgencyAndUser(ctx, proposal.AgencyID, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to look up acting user's collaborator record",
				zap.String("proposal_id", proposal.ID.String()),
				zap.Error(err),
			)
		}
		return nil
	}
	return collaborator
}

func (s *transitionServiceImpl) warn(result *dto.TransitionResult, step string, proposalID uuid.UUID, err error) {
	s.metrics.IncrementLedgerWriteFailure(step)
	s.logger.Error("Ledger side effect failed after stage change",
		zap.String("step", step),
		zap.String("proposal_id", proposalID.String()),
		zap.Error(err),
	)
	result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", step, err))
}

func (s *transitionServiceImpl) invalidateSummary(ctx context.Context, agencyID uuid.UUID) {
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
