package services

import (
	"context"
	"fmt"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
)

// ReportService attaches completion reports to work orders
type ReportService struct {
	reportRepo repositories.ReportRepository
	orderRepo  repositories.WorkOrderRepository
	events     EventPublisher
}

// NewReportService creates a new report service
func NewReportService(reportRepo repositories.ReportRepository, orderRepo repositories.WorkOrderRepository, events EventPublisher) *ReportService {
	return &ReportService{reportRepo: reportRepo, orderRepo: orderRepo, events: events}
}

// CreateReportInput represents a completion report
type CreateReportInput struct {
	WorkOrderID uint
	Answers     []string
	Pictures    [][]byte
}

// CreateReport stores the calling worker's report and closes the order.
// Both writes commit together or not at all.
func (s *ReportService) CreateReport(ctx context.Context, actor *domain.Principal, in *CreateReportInput) (*models.Report, error) {
	if err := actor.Require(domain.RoleWorker); err != nil {
		return nil, err
	}
	if in.WorkOrderID == 0 {
		return nil, fmt.Errorf("%w: work_order_id", domain.ErrMissingField)
	}
	if len(in.Answers) > domain.ReportAnswerCount {
		return nil, fmt.Errorf("%w: at most %d answers", domain.ErrInvalidInput, domain.ReportAnswerCount)
	}

	report := &models.Report{
		WorkerID:    actor.ID,
		WorkOrderID: in.WorkOrderID,
		Pictures:    in.Pictures,
	}
	if report.Pictures == nil {
		report.Pictures = [][]byte{}
	}
	report.SetAnswers(in.Answers)

	err := s.reportRepo.CommitReportAndClose(ctx, report, func(o *models.WorkOrder) error {
		if !actor.Owns(o.WorkerID) {
			return domain.ErrNotAuthorized
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("✅ Report %d filed, work order %d closed", report.ID, report.WorkOrderID)
	publish(ctx, s.events, domain.EventWorkOrderClosed, map[string]any{
		"work_order_id": report.WorkOrderID,
		"worker_id":     report.WorkerID,
		"report_id":     report.ID,
	})
	return report, nil
}

// GetByWorkOrder returns the report for an order. Workers only see reports
// on their own orders.
func (s *ReportService) GetByWorkOrder(ctx context.Context, actor *domain.Principal, workOrderID uint) (*models.Report, error) {
	if err := actor.Require(domain.RoleWorker, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if !actor.Is(domain.RoleAdmin) {
		order, err := s.orderRepo.GetByID(ctx, workOrderID)
		if err != nil {
			return nil, err
		}
		if !actor.Owns(order.WorkerID) {
			return nil, domain.ErrNotAuthorized
		}
	}
	return s.reportRepo.GetByWorkOrder(ctx, workOrderID)
}
