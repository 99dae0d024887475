package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type StageHandler struct {
	stageService service.StageService
}

func NewStageHandler(stageService service.StageService) *StageHandler {
	return &StageHandler{
		stageService: stageService,
	}
}

// CreateStage godoc
// @Summary      Create a pipeline stage
// @Description  Creates a new stage in the agency's proposal pipeline
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateStageRequest true "Stage creation request"
// @Success      201 {object} response.Envelope{data=dto.StageResponse} "Stage created"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /stages [post]
func (h *StageHandler) CreateStage(c *gin.Context) {
	var req dto.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	stage, err := h.stageService.CreateStage(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, stage)
}

// GetStages godoc
// @Summary      List pipeline stages
// @Description  Returns the agency's stages ordered by sort order
// @Tags         stages
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.StageResponse} "Stage list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId}/stages [get]
func (h *StageHandler) GetStages(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	stages, err := h.stageService.GetStagesByAgency(c.Request.Context(), agencyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stages)
}

// UpdateStage godoc
// @Summary      Update a pipeline stage
// @Description  Updates stage name, color or closing flags
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        stageId path string true "Stage ID (UUID)"
// @Param        request body dto.UpdateStageRequest true "Stage update request"
// @Success      200 {object} response.Envelope{data=dto.StageResponse} "Stage updated"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Stage not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /stages/{stageId} [patch]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	stageID, ok := parseUUIDParam(c, "stageId")
	if !ok {
		return
	}

	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	stage, err := h.stageService.UpdateStage(c.Request.Context(), stageID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stage)
}

// DeleteStage godoc
// @Summary      Delete a pipeline stage
// @Description  Deletes a stage that has no proposals in it
// @Tags         stages
// @Produce      json
// @Param        stageId path string true "Stage ID (UUID)"
// @Success      200 {object} response.Envelope "Stage deleted"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Stage not found"
// @Failure      409 {object} response.Envelope "Stage still has proposals"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /stages/{stageId} [delete]
func (h *StageHandler) DeleteStage(c *gin.Context) {
	stageID, ok := parseUUIDParam(c, "stageId")
	if !ok {
		return
	}

	if err := h.stageService.DeleteStage(c.Request.Context(), stageID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Stage deleted successfully")
}

// ReorderStages godoc
// @Summary      Reorder pipeline stages
// @Description  Applies a new sort order to the agency's stages
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Param        request body dto.ReorderStagesRequest true "Ordered stage IDs"
// @Success      200 {object} response.Envelope{data=[]dto.StageResponse} "Stages reordered"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId}/stages/reorder [put]
func (h *StageHandler) ReorderStages(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	var req dto.ReorderStagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	stages, err := h.stageService.ReorderStages(c.Request.Context(), agencyID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stages)
}
