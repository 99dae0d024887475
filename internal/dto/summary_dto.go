package dto

import "github.com/google/uuid"

// StageSummary aggregates the proposals currently sitting in one stage
type StageSummary struct {
	StageID       uuid.UUID `json:"stageId"`
	StageName     string    `json:"stageName"`
	IsClosed      bool      `json:"isClosed"`
	IsLost        bool      `json:"isLost"`
	ProposalCount int64     `json:"proposalCount"`
	TotalValue    float64   `json:"totalValue"`
}

// PipelineSummary is the kanban header aggregate for one agency
type PipelineSummary struct {
	AgencyID uuid.UUID       `json:"agencyId"`
	Stages   []*StageSummary `json:"stages"`
}
