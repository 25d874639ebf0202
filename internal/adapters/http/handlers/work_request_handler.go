package handlers

import (
	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/core/services"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WorkRequestHandler handles client fault report endpoints
type WorkRequestHandler struct {
	requestService *services.WorkRequestService
}

// NewWorkRequestHandler creates a new work request handler
func NewWorkRequestHandler(requestService *services.WorkRequestService) *WorkRequestHandler {
	return &WorkRequestHandler{requestService: requestService}
}

// CreateWorkRequestRequest represents a client fault report body.
// The client is always the caller.
type CreateWorkRequestRequest struct {
	Site        string `json:"site" form:"site"`
	AssetID     uint   `json:"asset_id" form:"asset_id"`
	DateOfFault string `json:"date_of_fault" form:"date_of_fault"`
	Description string `json:"description" form:"description"`
}

// CreateWorkRequest handles fault report intake
// @Summary Create work request
// @Tags Work Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateWorkRequestRequest true "Fault report"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /createWorkRequest [post]
func (h *WorkRequestHandler) CreateWorkRequest(c *fiber.Ctx) error {
	var req CreateWorkRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.requestService.CreateWorkRequest(c.Context(), middleware.GetPrincipal(c), &services.CreateWorkRequestInput{
		Site:        req.Site,
		AssetID:     req.AssetID,
		DateOfFault: req.DateOfFault,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err, "create work request")
	}

	return response.Success(c, "Work request created successfully", created)
}

// ListWorkRequests handles listing all work requests
// @Summary List work requests
// @Tags Work Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /workRequests [get]
func (h *WorkRequestHandler) ListWorkRequests(c *fiber.Ctx) error {
	reqs, err := h.requestService.ListWorkRequests(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list work requests")
	}
	return response.Success(c, "Work requests retrieved successfully", reqs)
}

// ListMyWorkRequests handles listing the caller's own work requests
// @Summary List my work requests
// @Tags Work Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /myWorkRequests [get]
func (h *WorkRequestHandler) ListMyWorkRequests(c *fiber.Ctx) error {
	reqs, err := h.requestService.ListMyWorkRequests(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list work requests")
	}
	return response.Success(c, "Work requests retrieved successfully", reqs)
}

// DeleteWorkRequest handles work request deletion
// @Summary Delete work request
// @Tags Work Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /deleteWorkRequest/{id} [delete]
func (h *WorkRequestHandler) DeleteWorkRequest(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "delete work request")
	}
	if err := h.requestService.DeleteWorkRequest(c.Context(), middleware.GetPrincipal(c), id); err != nil {
		return respondError(c, err, "delete work request")
	}
	return response.Success(c, "Work request deleted successfully", nil)
}
