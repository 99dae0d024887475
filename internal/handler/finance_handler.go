package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type FinanceHandler struct {
	financeService service.FinanceService
}

func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
	}
}

// GetTransactionsByAgency godoc
// @Summary      List financial transactions
// @Description  Returns all income transactions of an agency, pending and cancelled
// @Tags         finance
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.TransactionResponse} "Transaction list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId}/transactions [get]
func (h *FinanceHandler) GetTransactionsByAgency(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	transactions, err := h.financeService.GetTransactionsByAgency(c.Request.Context(), agencyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, transactions)
}

// GetTransactionsByProposal godoc
// @Summary      List a proposal's transactions
// @Tags         finance
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.TransactionResponse} "Transaction list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId}/transactions [get]
func (h *FinanceHandler) GetTransactionsByProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	transactions, err := h.financeService.GetTransactionsByProposal(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, transactions)
}

// CancelTransaction godoc
// @Summary      Cancel a financial transaction
// @Description  Marks a pending transaction as cancelled. Already-cancelled transactions
// @Description  are returned unchanged.
// @Tags         finance
// @Produce      json
// @Param        transactionId path string true "Transaction ID (UUID)"
// @Success      200 {object} response.Envelope{data=dto.TransactionResponse} "Transaction cancelled"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Transaction not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /transactions/{transactionId}/cancel [post]
func (h *FinanceHandler) CancelTransaction(c *gin.Context) {
	transactionID, ok := parseUUIDParam(c, "transactionId")
	if !ok {
		return
	}

	transaction, err := h.financeService.CancelTransaction(c.Request.Context(), transactionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, transaction)
}

// GetCommissionsByProposal godoc
// @Summary      List a proposal's commissions
// @Tags         finance
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.CommissionResponse} "Commission list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId}/commissions [get]
func (h *FinanceHandler) GetCommissionsByProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	commissions, err := h.financeService.GetCommissionsByProposal(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, commissions)
}

// CommissionReport godoc
// @Summary      Monthly commission report
// @Description  Returns the commission records and total for a collaborator in a period
// @Tags         finance
// @Produce      json
// @Param        collaboratorId path string true "Collaborator ID (UUID)"
// @Param        month query int true "Period month (1-12)"
// @Param        year query int true "Period year"
// @Success      200 {object} response.Envelope{data=dto.CommissionReportResponse} "Commission report"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Collaborator not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /collaborators/{collaboratorId}/commission-report [get]
func (h *FinanceHandler) CommissionReport(c *gin.Context) {
	collaboratorID, ok := parseUUIDParam(c, "collaboratorId")
	if !ok {
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "month query parameter is required")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "year query parameter is required")
		return
	}

	report, err := h.financeService.CommissionReport(c.Request.Context(), collaboratorID, month, year)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, report)
}
