package dto

import "github.com/google/uuid"

// FinancialChoice is the caller's decision on a close transition: create
// the income transaction and commission, or move the stage only.
type FinancialChoice string

const (
	FinancialChoiceAdd  FinancialChoice = "add"
	FinancialChoiceSkip FinancialChoice = "skip"
)

// TransitionKind classifies a stage change by the is_closed flags of the
// two stages involved
type TransitionKind string

const (
	// TransitionKindNone means from == to; nothing happens
	TransitionKindNone TransitionKind = "none"
	// TransitionKindNeutral moves between stages with equal is_closed flags
	TransitionKindNeutral TransitionKind = "neutral"
	// TransitionKindClose crosses from open to closed
	TransitionKindClose TransitionKind = "close"
	// TransitionKindReopen crosses from closed back to open
	TransitionKindReopen TransitionKind = "reopen"
)

// TransitionRequest represents the request to move a proposal to another
// stage. FinancialChoice is required only when the move is a close.
type TransitionRequest struct {
	ToStageID       uuid.UUID        `json:"toStageId" binding:"required"`
	FinancialChoice *FinancialChoice `json:"financialChoice" binding:"omitempty,oneof=add skip"`
}

// TransitionResult reports the outcome of a stage transition. Warnings
// lists side-effect steps that failed after the stage change committed;
// the stage change itself is never rolled back for those.
type TransitionResult struct {
	Proposal    *ProposalResponse    `json:"proposal"`
	Kind        TransitionKind       `json:"kind"`
	FromStageID uuid.UUID            `json:"fromStageId"`
	ToStageID   uuid.UUID            `json:"toStageId"`
	Totals      *ProposalTotals      `json:"totals,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Commission  *CommissionResponse  `json:"commission,omitempty"`
	Warnings    []string             `json:"warnings,omitempty"`
}
