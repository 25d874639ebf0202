package repositories

import (
	"context"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
)

// reportRepository implements ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// CommitReportAndClose stores the report and closes its work order as one
// unit. The order row is locked first and handed to check; a failing check,
// an existing report or a failed status write rolls everything back.
func (r *reportRepository) CommitReportAndClose(ctx context.Context, report *models.Report, check OrderCheck) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.WorkOrder
		if err := lockOrder(tx, report.WorkOrderID, &order); err != nil {
			return err
		}
		if check != nil {
			if err := check(&order); err != nil {
				return err
			}
		}

		var existing int64
		if err := tx.Model(&models.Report{}).Where("work_order_id = ?", order.ID).Count(&existing).Error; err != nil {
			return translate(err, domain.ErrReportNotFound)
		}
		if existing > 0 {
			return domain.ErrAlreadyReported
		}

		if err := tx.Create(report).Error; err != nil {
			if err = translate(err, domain.ErrReportNotFound); err == domain.ErrDuplicateEntry {
				return domain.ErrAlreadyReported
			}
			return err
		}

		err := tx.Model(&models.WorkOrder{}).
			Where("id = ? AND worker_id = ?", order.ID, report.WorkerID).
			Update("status", domain.WorkOrderClosed).Error
		return translate(err, domain.ErrWorkOrderNotFound)
	})
}

// GetByWorkOrder gets the report for a work order with the worker name
func (r *reportRepository) GetByWorkOrder(ctx context.Context, workOrderID uint) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Preload("Worker", selectNames).
		Where("work_order_id = ?", workOrderID).
		First(&report).Error
	if err != nil {
		return nil, translate(err, domain.ErrReportNotFound)
	}
	return &report, nil
}
