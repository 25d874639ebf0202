package repositories

import (
	"context"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
)

// workRequestRepository implements WorkRequestRepository interface
type workRequestRepository struct {
	db *gorm.DB
}

// NewWorkRequestRepository creates a new work request repository
func NewWorkRequestRepository(db *gorm.DB) WorkRequestRepository {
	return &workRequestRepository{db: db}
}

// Create records a work request after checking its asset exists
func (r *workRequestRepository) Create(ctx context.Context, req *models.WorkRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Client{}, req.ClientID, domain.ErrClientNotFound); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Asset{}, req.AssetID, domain.ErrAssetNotFound); err != nil {
			return err
		}
		return translate(tx.Create(req).Error, domain.ErrWorkRequestNotFound)
	})
}

// List lists all work requests joined with client and asset names
func (r *workRequestRepository) List(ctx context.Context) ([]*models.WorkRequest, error) {
	var reqs []*models.WorkRequest
	err := r.db.WithContext(ctx).
		Preload("Client", selectNames).
		Preload("Asset", selectNames).
		Order("date_of_fault DESC, id DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkRequestNotFound)
	}
	return reqs, nil
}

// ListByClient lists the work requests a client submitted
func (r *workRequestRepository) ListByClient(ctx context.Context, clientID uint) ([]*models.WorkRequest, error) {
	var reqs []*models.WorkRequest
	err := r.db.WithContext(ctx).
		Preload("Asset", selectNames).
		Where("client_id = ?", clientID).
		Order("id DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, translate(err, domain.ErrWorkRequestNotFound)
	}
	return reqs, nil
}

// Delete removes a work request
func (r *workRequestRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.WorkRequest{}, id)
	if result.Error != nil {
		return translate(result.Error, domain.ErrWorkRequestNotFound)
	}
	if result.RowsAffected == 0 {
		return domain.ErrWorkRequestNotFound
	}
	return nil
}

// selectNames limits a preload to the columns join views need
func selectNames(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// mustExist returns notFound unless a row with id exists in model's table
func mustExist(tx *gorm.DB, model interface{}, id uint, notFound error) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err, notFound)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
