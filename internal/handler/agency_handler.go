package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type AgencyHandler struct {
	agencyService service.AgencyService
}

func NewAgencyHandler(agencyService service.AgencyService) *AgencyHandler {
	return &AgencyHandler{
		agencyService: agencyService,
	}
}

// CreateAgency godoc
// @Summary      Register an agency
// @Tags         agencies
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAgencyRequest true "Agency creation request"
// @Success      201 {object} response.Envelope{data=dto.AgencyResponse} "Agency created"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies [post]
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	var req dto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	agency, err := h.agencyService.CreateAgency(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, agency)
}

// GetAgency godoc
// @Summary      Get an agency
// @Tags         agencies
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Success      200 {object} response.Envelope{data=dto.AgencyResponse} "Agency"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Agency not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId} [get]
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	agency, err := h.agencyService.GetAgency(c.Request.Context(), agencyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, agency)
}

// UpdateAgency godoc
// @Summary      Update an agency
// @Description  Updates agency settings, including pinning the closed-won stage
// @Tags         agencies
// @Accept       json
// @Produce      json
// @Param        agencyId path string true "Agency ID (UUID)"
// @Param        request body dto.UpdateAgencyRequest true "Agency update request"
// @Success      200 {object} response.Envelope{data=dto.AgencyResponse} "Agency updated"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Agency not found"
// @Failure      422 {object} response.Envelope "Stage not eligible as closed-won"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /agencies/{agencyId} [patch]
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	agencyID, ok := parseUUIDParam(c, "agencyId")
	if !ok {
		return
	}

	var req dto.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	agency, err := h.agencyService.UpdateAgency(c.Request.Context(), agencyID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, agency)
}
