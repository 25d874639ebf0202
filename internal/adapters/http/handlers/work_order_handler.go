package handlers

import (
	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/core/services"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WorkOrderHandler handles work order endpoints
type WorkOrderHandler struct {
	orderService *services.WorkOrderService
	maxFiles     int
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(orderService *services.WorkOrderService, maxFiles int) *WorkOrderHandler {
	return &WorkOrderHandler{orderService: orderService, maxFiles: maxFiles}
}

// CreateWorkOrderRequest represents work order fields
type CreateWorkOrderRequest struct {
	WorkerID      uint   `json:"worker_id" form:"worker_id"`
	AssetID       uint   `json:"asset_id" form:"asset_id"`
	WorkRequestID uint   `json:"work_request_id" form:"work_request_id"`
	Name          string `json:"name" form:"name"`
	StartDate     string `json:"start_date" form:"start_date"`
	EndDate       string `json:"end_date" form:"end_date"`
	Description   string `json:"description" form:"description"`
}

// UpdateStatusRequest represents a status change body
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// CreateWorkOrder handles work order creation
// @Summary Create work order
// @Description Assign a new open work order to a worker, optionally consuming a work request
// @Tags Work Orders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param worker_id formData int true "Assigned worker"
// @Param asset_id formData int true "Asset"
// @Param work_request_id formData int false "Work request to consume"
// @Param name formData string false "Title"
// @Param start_date formData string false "YYYY-MM-DD"
// @Param end_date formData string false "YYYY-MM-DD"
// @Param description formData string false "Description"
// @Param images formData file false "Up to 10 images"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /createWorkOrder [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *fiber.Ctx) error {
	var req CreateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	images, err := receiveFiles(c, "images", h.maxFiles)
	if err != nil {
		return respondError(c, err, "create work order")
	}

	input := &services.CreateWorkOrderInput{
		WorkerID:    req.WorkerID,
		AssetID:     req.AssetID,
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Images:      images,
	}
	if req.WorkRequestID != 0 {
		input.WorkRequestID = &req.WorkRequestID
	}

	order, err := h.orderService.CreateWorkOrder(c.Context(), middleware.GetPrincipal(c), input)
	if err != nil {
		return respondError(c, err, "create work order")
	}

	return response.Success(c, "Work order created successfully", order)
}

// ListMine handles listing the calling worker's orders
// @Summary List my work orders
// @Tags Work Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /workerOrders [get]
func (h *WorkOrderHandler) ListMine(c *fiber.Ctx) error {
	orders, err := h.orderService.ListMine(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list work orders")
	}
	return response.Success(c, "Work orders retrieved successfully", orders)
}

// ListAll handles listing every order with worker and asset names
// @Summary List all work orders
// @Tags Work Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /allWorkOrders [get]
func (h *WorkOrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list work orders")
	}
	return response.Success(c, "Work orders retrieved successfully", orders)
}

// GetWorkOrder handles fetching one order with its images
// @Summary Get work order
// @Tags Work Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work order ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /workOrder/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "get work order")
	}
	order, err := h.orderService.GetWorkOrder(c.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err, "get work order")
	}
	return response.Success(c, "Work order retrieved successfully", order)
}

// UpdateStatus handles work order status changes
// @Summary Update work order status
// @Tags Work Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work order ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /updateWorkOrderStatus/{id} [put]
func (h *WorkOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "update work order status")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	order, err := h.orderService.UpdateStatus(c.Context(), middleware.GetPrincipal(c), id, req.Status)
	if err != nil {
		return respondError(c, err, "update work order status")
	}
	return response.Success(c, "Work order status updated successfully", fiber.Map{"id": order.ID, "status": order.Status})
}

// DeleteWorkOrder handles work order deletion
// @Summary Delete work order
// @Tags Work Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /deleteWorkOrder/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "delete work order")
	}
	if err := h.orderService.DeleteWorkOrder(c.Context(), middleware.GetPrincipal(c), id); err != nil {
		return respondError(c, err, "delete work order")
	}
	return response.Success(c, "Work order deleted successfully", nil)
}
