package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type CollaboratorHandler struct {
	collaboratorService service.CollaboratorService
}

func NewCollaboratorHandler(collaboratorService service.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{
		collaboratorService: collaboratorService,
	}
}

// CreateCollaborator godoc
// @Summary      Register a collaborator
// @Description  Registers an agency collaborator with a commission percentage and base
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCollaboratorRequest true "Collaborator creation request"
// @Success      201 {object} response.Envelope{data=dto.CollaboratorResponse} "Collaborator created"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      409 {object} response.Envelope "User already registered for the agency"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /collaborators [post]
func (h *CollaboratorHandler) CreateCollaborator(c *gin.Context) {
	var req dto.CreateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	collaborator, err := h.collaboratorService.CreateCollaborator(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, collaborator)
}

// GetCollaborators godoc
// @Summary      List collaborators
// @Tags         collaborators
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.CollaboratorResponse} "Collaborator list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId}/collaborators [get]
func (h *CollaboratorHandler) GetCollaborators(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	collaborators, err := h.collaboratorService.GetCollaboratorsByAgency(c.Request.Context(), agencyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, collaborators)
}

// UpdateCollaborator godoc
// @Summary      Update a collaborator
// @Description  Updates commission settings or activation status
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Param        collaboratorId path string true "Collaborator ID (UUID)"
// @Param        request body dto.UpdateCollaboratorRequest true "Collaborator update request"
// @Success      200 {object} response.Envelope{data=dto.CollaboratorResponse} "Collaborator updated"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Collaborator not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /collaborators/{collaboratorId} [patch]
func (h *CollaboratorHandler) UpdateCollaborator(c *gin.Context) {
	collaboratorID, ok := parseUUIDParam(c, "collaboratorId")
	if !ok {
		return
	}

	var req dto.UpdateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	collaborator, err := h.collaboratorService.UpdateCollaborator(c.Request.Context(), collaboratorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, collaborator)
}

// DeleteCollaborator godoc
// @Summary      Remove a collaborator
// @Tags         collaborators
// @Produce      json
// @Param        collaboratorId path string true "Collaborator ID (UUID)"
// @Success      200 {object} response.Envelope "Collaborator deleted"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Collaborator not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /collaborators/{collaboratorId} [delete]
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	collaboratorID, ok := parseUUIDParam(c, "collaboratorId")
	if !ok {
		return
	}

	if err := h.collaboratorService.DeleteCollaborator(c.Request.Context(), collaboratorID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Collaborator deleted successfully")
}
