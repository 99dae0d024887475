package service

import (
	"github.com/shopspring/decimal"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
)

// CommissionAmount computes a collaborator's commission for a proposal's
// totals. The base is the sale value or the commission (profit) total
// depending on the collaborator's policy; the result is
// base * percentage / 100 rounded to 2 decimal places. Pure function, no
// side effects; called by the transition orchestrator only.
func CommissionAmount(collaborator *domain.Collaborator, totals *dto.ProposalTotals) float64 {
	base := totals.Value
	if collaborator.CommissionBase == domain.CommissionBaseProfit {
		base = totals.Commission
	}

	amount := decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(collaborator.CommissionPercentage)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	result, _ := amount.Float64()
	return result
}
