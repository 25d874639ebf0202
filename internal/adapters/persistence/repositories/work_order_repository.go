package repositories

import (
	"context"
	"time"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// workOrderRepository implements WorkOrderRepository interface
type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

// Create inserts a work order once its worker and asset are known to exist.
// When consumeRequestID is set the originating work request is deleted in
// the same transaction.
func (r *workOrderRepository) Create(ctx context.Context, order *models.WorkOrder, consumeRequestID *uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Worker{}, order.WorkerID, domain.ErrWorkerNotFound); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Asset{}, order.AssetID, domain.ErrAssetNotFound); err != nil {
			return err
		}

		if consumeRequestID != nil {
			result := tx.Delete(&models.WorkRequest{}, *consumeRequestID)
			if result.Error != nil {
				return translate(result.Error, domain.ErrWorkRequestNotFound)
			}
			if result.RowsAffected == 0 {
				return domain.ErrWorkRequestNotFound
			}
		}

		return translate(tx.Create(order).Error, domain.ErrWorkOrderNotFound)
	})
}

// GetByID gets a work order by ID
func (r *workOrderRepository) GetByID(ctx context.Context, id uint) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("Worker", selectNames).
		Preload("Asset", selectNames).
		First(&order, id).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkOrderNotFound)
	}
	return &order, nil
}

// ListByWorker lists the work orders assigned to a worker
func (r *workOrderRepository) ListByWorker(ctx context.Context, workerID uint) ([]*models.WorkOrder, error) {
	var orders []*models.WorkOrder
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("start_date ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkOrderNotFound)
	}
	return orders, nil
}

// ListAll lists every work order with worker and asset names
func (r *workOrderRepository) ListAll(ctx context.Context) ([]*models.WorkOrder, error) {
	var orders []*models.WorkOrder
	err := r.db.WithContext(ctx).
		Omit("images").
		Preload("Worker", selectNames).
		Preload("Asset", selectNames).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkOrderNotFound)
	}
	return orders, nil
}

// UpdateStatus locks the order, runs check against it and then stores status
func (r *workOrderRepository) UpdateStatus(ctx context.Context, id uint, status string, check OrderCheck) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOrder(tx, id, &order); err != nil {
			return err
		}
		if check != nil {
			if err := check(&order); err != nil {
				return err
			}
		}
		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return translate(err, domain.ErrWorkOrderNotFound)
		}
		order.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes a work order and its report
func (r *workOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.WorkOrder
		if err := lockOrder(tx, id, &order); err != nil {
			return err
		}
		if err := tx.Where("work_order_id = ?", id).Delete(&models.Report{}).Error; err != nil {
			return translate(err, domain.ErrReportNotFound)
		}
		return translate(tx.Delete(&models.WorkOrder{}, id).Error, domain.ErrWorkOrderNotFound)
	})
}

// ListOverdue lists orders that are not closed and whose end date is before the given time
func (r *workOrderRepository) ListOverdue(ctx context.Context, before time.Time) ([]*models.WorkOrder, error) {
	var orders []*models.WorkOrder
	err := r.db.WithContext(ctx).
		Omit("images").
		Where("status <> ?", domain.WorkOrderClosed).
		Where("end_date IS NOT NULL AND end_date < ?", before).
		Order("end_date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkOrderNotFound)
	}
	return orders, nil
}

// lockOrder loads an order row FOR UPDATE inside tx
func lockOrder(tx *gorm.DB, id uint, order *models.WorkOrder) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Omit("images").First(order, id).Error
	return translate(err, domain.ErrWorkOrderNotFound)
}
