package services

import (
	"context"
	"time"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
)

// OverdueService periodically reports open work orders past their end date
type OverdueService struct {
	orderRepo repositories.WorkOrderRepository
	events    EventPublisher
	cron      *cron.Cron
	now       func() time.Time
}

// NewOverdueService creates a new overdue scanner
func NewOverdueService(orderRepo repositories.WorkOrderRepository, events EventPublisher) *OverdueService {
	return &OverdueService{
		orderRepo: orderRepo,
		events:    events,
		cron:      cron.New(),
		now:       time.Now,
	}
}

// Start schedules the scan with a cron spec such as "@every 1h"
func (s *OverdueService) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.Scan(ctx); err != nil {
			log.Errorf("❌ Overdue scan failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Infof("🚀 Overdue scanner started (%s)", spec)
	return nil
}

// Stop waits for a running scan to finish
func (s *OverdueService) Stop() {
	<-s.cron.Stop().Done()
	log.Info("🛑 Overdue scanner stopped")
}

// Scan publishes one overdue event per open order whose end date has passed
// and returns the orders it found. It never writes to the store.
func (s *OverdueService) Scan(ctx context.Context) ([]*models.WorkOrder, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	orders, err := s.orderRepo.ListOverdue(ctx, today)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		publish(ctx, s.events, domain.EventWorkOrderOverdue, map[string]any{
			"work_order_id": o.ID,
			"worker_id":     o.WorkerID,
			"status":        o.Status,
			"end_date":      models.FormatDate(o.EndDate),
		})
	}
	if len(orders) > 0 {
		log.Warnf("⏰ %d work orders overdue", len(orders))
	}
	return orders, nil
}
