package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
)

// WorkOrderService handles the work order lifecycle
type WorkOrderService struct {
	orderRepo repositories.WorkOrderRepository
	events    EventPublisher
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(orderRepo repositories.WorkOrderRepository, events EventPublisher) *WorkOrderService {
	return &WorkOrderService{orderRepo: orderRepo, events: events}
}

// CreateWorkOrderInput represents work order creation input
type CreateWorkOrderInput struct {
	WorkerID      uint
	AssetID       uint
	WorkRequestID *uint
	Name          string
	StartDate     string
	EndDate       string
	Description   string
	Images        [][]byte
}

// CreateWorkOrder assigns a new open order to a worker. When WorkRequestID
// is set the request is consumed by the same write.
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, actor *domain.Principal, in *CreateWorkOrderInput) (*models.WorkOrder, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	if in.WorkerID == 0 {
		return nil, fmt.Errorf("%w: worker_id", domain.ErrMissingField)
	}
	if in.AssetID == 0 {
		return nil, fmt.Errorf("%w: asset_id", domain.ErrMissingField)
	}

	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrInvalidInput)
	}

	order := &models.WorkOrder{
		WorkerID:    in.WorkerID,
		AssetID:     in.AssetID,
		Name:        strings.TrimSpace(in.Name),
		StartDate:   start,
		EndDate:     end,
		Description: strings.TrimSpace(in.Description),
		Status:      domain.WorkOrderOpen,
		Images:      in.Images,
	}
	if order.Images == nil {
		order.Images = [][]byte{}
	}

	if err := s.orderRepo.Create(ctx, order, in.WorkRequestID); err != nil {
		return nil, err
	}

	log.Infof("✅ Work order %d created for worker %d", order.ID, order.WorkerID)
	publish(ctx, s.events, domain.EventWorkOrderCreated, map[string]any{
		"work_order_id": order.ID,
		"worker_id":     order.WorkerID,
		"asset_id":      order.AssetID,
		"end_date":      models.FormatDate(order.EndDate),
	})
	return order, nil
}

// UpdateStatus sets a new status on an order. Only the assigned worker or
// an administrator may do so, and a closed order stays closed.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, actor *domain.Principal, id uint, status string) (*models.WorkOrder, error) {
	if err := actor.Require(domain.RoleWorker, domain.RoleAdmin); err != nil {
		return nil, err
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status", domain.ErrMissingField)
	}

	var previous string
	order, err := s.orderRepo.UpdateStatus(ctx, id, status, func(o *models.WorkOrder) error {
		if !actor.Is(domain.RoleAdmin) && !actor.Owns(o.WorkerID) {
			return domain.ErrNotAuthorized
		}
		if o.IsClosed() && status != domain.WorkOrderClosed {
			return domain.ErrInvalidTransition
		}
		previous = o.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != status {
		publish(ctx, s.events, domain.EventWorkOrderStatusChanged, map[string]any{
			"work_order_id": order.ID,
			"worker_id":     order.WorkerID,
			"from":          previous,
			"to":            status,
		})
	}
	return order, nil
}

// ListMine lists the orders assigned to the calling worker
func (s *WorkOrderService) ListMine(ctx context.Context, actor *domain.Principal) ([]*models.WorkOrder, error) {
	if err := actor.Require(domain.RoleWorker); err != nil {
		return nil, err
	}
	return s.orderRepo.ListByWorker(ctx, actor.ID)
}

// ListAll lists every order with its worker and asset names
func (s *WorkOrderService) ListAll(ctx context.Context, actor *domain.Principal) ([]*models.WorkOrderView, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.WorkOrderView, len(orders))
	for i, o := range orders {
		out[i] = o.ToView()
	}
	return out, nil
}

// GetWorkOrder returns one order. Workers only see their own.
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, actor *domain.Principal, id uint) (*models.WorkOrder, error) {
	if err := actor.Require(domain.RoleWorker, domain.RoleAdmin); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Is(domain.RoleAdmin) && !actor.Owns(order.WorkerID) {
		return nil, domain.ErrNotAuthorized
	}
	return order, nil
}

// DeleteWorkOrder removes an order together with its report
func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, actor *domain.Principal, id uint) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Infof("🗑️ Work order %d deleted", id)
	return nil
}

// parseDate reads an optional YYYY-MM-DD field, nil when blank
func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return &t, nil
}
