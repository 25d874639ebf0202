package repositories

import (
	"context"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
)

// workerRepository implements WorkerRepository interface
type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

// Create creates a new worker
func (r *workerRepository) Create(ctx context.Context, worker *models.Worker) error {
	return translate(r.db.WithContext(ctx).Create(worker).Error, domain.ErrWorkerNotFound)
}

// GetByID gets a worker by ID
func (r *workerRepository) GetByID(ctx context.Context, id uint) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, translate(err, domain.ErrWorkerNotFound)
	}
	return &worker, nil
}

// List lists all workers
func (r *workerRepository) List(ctx context.Context) ([]*models.Worker, error) {
	var workers []*models.Worker
	err := r.db.WithContext(ctx).Order("name ASC").Find(&workers).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkerNotFound)
	}
	return workers, nil
}

// DeleteCascade removes a worker together with its work orders and their
// reports in a single transaction.
func (r *workerRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var worker models.Worker
		if err := tx.Select("id").First(&worker, id).Error; err != nil {
			return translate(err, domain.ErrWorkerNotFound)
		}

		orderIDs := tx.Model(&models.WorkOrder{}).Select("id").Where("worker_id = ?", id)
		if err := tx.Where("work_order_id IN (?) OR worker_id = ?", orderIDs, id).Delete(&models.Report{}).Error; err != nil {
			return translate(err, domain.ErrReportNotFound)
		}
		if err := tx.Where("worker_id = ?", id).Delete(&models.WorkOrder{}).Error; err != nil {
			return translate(err, domain.ErrWorkOrderNotFound)
		}
		if err := tx.Delete(&models.Worker{}, id).Error; err != nil {
			return translate(err, domain.ErrWorkerNotFound)
		}
		return nil
	})
}
