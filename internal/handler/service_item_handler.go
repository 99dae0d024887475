package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/response"
	"travel-crm-api/internal/service"
)

type ServiceItemHandler struct {
	itemService service.ServiceItemService
}

func NewServiceItemHandler(itemService service.ServiceItemService) *ServiceItemHandler {
	return &ServiceItemHandler{
		itemService: itemService,
	}
}

// CreateItem godoc
// @Summary      Add a service to a proposal
// @Description  Adds a travel service (flight, hotel, transfer, ...) to a proposal
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateServiceItemRequest true "Service creation request"
// @Success      201 {object} response.Envelope{data=dto.ServiceItemResponse} "Service created"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /services [post]
func (h *ServiceItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, item)
}

// GetItems godoc
// @Summary      List proposal services
// @Description  Returns all services of a proposal
// @Tags         services
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope{data=[]dto.ServiceItemResponse} "Service list"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId}/services [get]
func (h *ServiceItemHandler) GetItems(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	items, err := h.itemService.GetItemsByProposal(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, items)
}

// UpdateItem godoc
// @Summary      Update a proposal service
// @Description  Updates a service's value, commission or schedule
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        serviceId path string true "Service ID (UUID)"
// @Param        request body dto.UpdateServiceItemRequest true "Service update request"
// @Success      200 {object} response.Envelope{data=dto.ServiceItemResponse} "Service updated"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Service not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /services/{serviceId} [patch]
func (h *ServiceItemHandler) UpdateItem(c *gin.Context) {
	serviceID, ok := parseUUIDParam(c, "serviceId")
	if !ok {
		return
	}

	var req dto.UpdateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), serviceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Remove a proposal service
// @Tags         services
// @Produce      json
// @Param        serviceId path string true "Service ID (UUID)"
// @Success      200 {object} response.Envelope "Service deleted"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Service not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /services/{serviceId} [delete]
func (h *ServiceItemHandler) DeleteItem(c *gin.Context) {
	serviceID, ok := parseUUIDParam(c, "serviceId")
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), serviceID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Service deleted successfully")
}

// GetTotals godoc
// @Summary      Get proposal totals
// @Description  Returns the proposal's aggregated sale value and commission total
// @Tags         services
// @Produce      json
// @Param        proposalId path string true "Proposal ID (UUID)"
// @Success      200 {object} response.Envelope{data=dto.ProposalTotals} "Totals"
// @Failure      400 {object} response.Envelope "Invalid request"
// @Failure      404 {object} response.Envelope "Proposal not found"
// @Failure      500 {object} response.Envelope "Server error"
// @Router       /proposals/{proposalId}/totals [get]
func (h *ServiceItemHandler) GetTotals(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposalId")
	if !ok {
		return
	}

	totals, err := h.itemService.Totals(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, totals)
}
