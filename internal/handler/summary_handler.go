package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// PipelineSummary godoc
// @Summary      Pipeline summary
// @Description  Returns per-stage proposal counts and value totals for the kanban header.
// @Description  Results are cached briefly, so figures may trail writes by up to a minute.
// @Tags         summary
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Success      200 {object} response.Envelope{data=dto.PipelineSummary} "Pipeline summary"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId}/pipeline-summary [get]
func (h *SummaryHandler) PipelineSummary(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	summary, err := h.summaryService.PipelineSummary(c.Request.Context(), agencyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}
