package job

import (
	"context"

	"go.uber.org/zap"

	"travel-crm-api/internal/metrics"
	"travel-crm-api/internal/repository"
)

// ReconciliationJob audits the financial ledger against the pipeline state.
// Pending income transactions are expected while a proposal sits in a closed
// stage awaiting settlement. Commission records attached to a proposal that
// is back in an open stage mean a reopen was interrupted before cleanup.
type ReconciliationJob struct {
	transactionRepo repository.TransactionRepository
	commissionRepo  repository.CommissionRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewReconciliationJob creates a new ReconciliationJob instance
func NewReconciliationJob(
	transactionRepo repository.TransactionRepository,
	commissionRepo repository.CommissionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		transactionRepo: transactionRepo,
		commissionRepo:  commissionRepo,
		metrics:         m,
		logger:          logger,
	}
}

// Run executes one reconciliation sweep and refreshes the drift gauges
func (j *ReconciliationJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting ledger reconciliation sweep")

	pending, err := j.transactionRepo.FindPendingForOpenProposals(ctx)
	if err != nil {
		j.logger.Error("Failed to query pending transactions for open proposals",
			zap.Error(err),
		)
		return
	}

	orphanCommissions, err := j.commissionRepo.FindForOpenProposals(ctx)
	if err != nil {
		j.logger.Error("Failed to query commission records for open proposals",
			zap.Error(err),
		)
		return
	}

	if j.metrics != nil {
		j.metrics.SetPendingTransactionsTotal(int64(len(pending)))
		j.metrics.SetOpenProposalCommissionsTotal(int64(len(orphanCommissions)))
	}

	for _, tx := range pending {
		j.logger.Warn("Pending transaction attached to an open proposal",
			zap.String("transaction_id", tx.ID.String()),
			zap.String("proposal_id", tx.ProposalID.String()),
			zap.Float64("total_value", tx.TotalValue),
		)
	}

	for _, commission := range orphanCommissions {
		j.logger.Warn("Commission record attached to an open proposal",
			zap.String("commission_id", commission.ID.String()),
			zap.String("proposal_id", commission.ProposalID.String()),
			zap.String("collaborator_id", commission.CollaboratorID.String()),
		)
	}

	j.logger.Info("Ledger reconciliation sweep completed",
		zap.Int("pending_on_open_proposals", len(pending)),
		zap.Int("commissions_on_open_proposals", len(orphanCommissions)),
	)
}
