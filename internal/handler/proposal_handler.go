package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type ProposalHandler struct {
	proposalService   service.ProposalService
	transitionService service.TransitionService
}

func NewProposalHandler(
	proposalService service.ProposalService,
	transitionService service.TransitionService,
) *ProposalHandler {
	return &ProposalHandler{
		proposalService:   proposalService,
		transitionService: transitionService,
	}
}

// CreateProposal godoc
// @Summary      Create a proposal
// @Description  Creates a new proposal in the agency's first pipeline stage
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProposalRequest true "Proposal creation request"
// @Success      201 {object} response.Envelope{data=dto.ProposalResponse} "Proposal created"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.CreateProposal(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, proposal)
}

// GetProposal godoc
// @Summary      Get a proposal
// @Description  Returns a proposal with its stage and service items
// @Tags         proposals
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope{data=dto.ProposalResponse} "Proposal"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	proposal, err := h.proposalService.GetProposal(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposal)
}

// GetProposals godoc
// @Summary      List proposals
// @Description  Returns all proposals of an agency
// @Tags         proposals
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.ProposalResponse} "Proposal list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId}/proposals [get]
func (h *ProposalHandler) GetProposals(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	proposals, err := h.proposalService.GetProposalsByAgency(c.Request.Context(), agencyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposals)
}

// UpdateProposal godoc
// @Summary      Update a proposal
// @Description  Updates proposal fields. Stage changes go through the transition endpoint.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Param        request body dto.UpdateProposalRequest true "Proposal update request"
// @Success      200 {object} response.Envelope{data=dto.ProposalResponse} "Proposal updated"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId} [patch]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	var req dto.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.UpdateProposal(c.Request.Context(), proposalID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposal)
}

// DeleteProposal godoc
// @Summary      Delete a proposal
// @Description  Deletes a proposal, cancelling its transactions and removing its commissions
// @Tags         proposals
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope "Proposal deleted"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	if err := h.proposalService.DeleteProposal(c.Request.Context(), proposalID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Proposal deleted successfully")
}

// GetHistory godoc
// @Summary      Get proposal history
// @Description  Returns the append-only audit trail of a proposal, newest first
// @Tags         proposals
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.ProposalHistoryResponse} "History entries"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId}/history [get]
func (h *ProposalHandler) GetHistory(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	history, err := h.proposalService.GetHistory(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, history)
}

// Transition godoc
// @Summary      Move a proposal to another stage
// @Description  Moves a proposal between pipeline stages. Closing transitions require a
// @Description  financialChoice of "add" or "skip"; reopening cancels the proposal's
// @Description  income transactions and removes its commission records.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Param        request body dto.TransitionRequest true "Transition request"
// @Success      200 {object} response.Envelope{data=dto.TransitionResult} "Transition applied"
// @Failure      400 {object} response.Envelope "Missing financial choice or invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      422 {object} response.Envelope "Unknown or cross-agency stage"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId}/transition [post]
func (h *ProposalHandler) Transition(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.transitionService.Transition(c.Request.Context(), proposalID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
