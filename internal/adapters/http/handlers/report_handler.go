package handlers

import (
	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/core/services"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles completion report endpoints
type ReportHandler struct {
	reportService *services.ReportService
	maxFiles      int
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService, maxFiles int) *ReportHandler {
	return &ReportHandler{reportService: reportService, maxFiles: maxFiles}
}

// CreateReportRequest represents a completion report body
type CreateReportRequest struct {
	WorkOrderID uint   `json:"work_order_id" form:"work_order_id"`
	Answer1     string `json:"answer_1" form:"answer_1"`
	Answer2     string `json:"answer_2" form:"answer_2"`
	Answer3     string `json:"answer_3" form:"answer_3"`
	Answer4     string `json:"answer_4" form:"answer_4"`
	Answer5     string `json:"answer_5" form:"answer_5"`
	Answer6     string `json:"answer_6" form:"answer_6"`
}

// CreateReport handles report submission, which closes the work order
// @Summary Submit report
// @Description Attach the completion report to one of the caller's work orders and close it
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param work_order_id formData int true "Work order ID"
// @Param answer_1 formData string false "Answer 1"
// @Param answer_2 formData string false "Answer 2"
// @Param answer_3 formData string false "Answer 3"
// @Param answer_4 formData string false "Answer 4"
// @Param answer_5 formData string false "Answer 5"
// @Param answer_6 formData string false "Answer 6"
// @Param pictures formData file false "Up to 10 pictures"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /createReport [post]
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	pictures, err := receiveFiles(c, "pictures", h.maxFiles)
	if err != nil {
		return respondError(c, err, "create report")
	}

	report, err := h.reportService.CreateReport(c.Context(), middleware.GetPrincipal(c), &services.CreateReportInput{
		WorkOrderID: req.WorkOrderID,
		Answers:     []string{req.Answer1, req.Answer2, req.Answer3, req.Answer4, req.Answer5, req.Answer6},
		Pictures:    pictures,
	})
	if err != nil {
		return respondError(c, err, "create report")
	}

	return response.Success(c, "Report submitted, work order closed", report.ToResponse())
}

// GetReport handles fetching the report for a work order
// @Summary Get report by work order
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param workOrderId path int true "Work order ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /report/{workOrderId} [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id, err := paramID(c, "workOrderId")
	if err != nil {
		return respondError(c, err, "get report")
	}
	report, err := h.reportService.GetByWorkOrder(c.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err, "get report")
	}
	return response.Success(c, "Report retrieved successfully", report.ToResponse())
}
