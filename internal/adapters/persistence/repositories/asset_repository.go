package repositories

import (
	"context"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
)

// assetRepository implements AssetRepository interface
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	return translate(r.db.WithContext(ctx).Create(asset).Error, domain.ErrAssetNotFound)
}

// GetByID gets an asset by ID
func (r *assetRepository) GetByID(ctx context.Context, id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, translate(err, domain.ErrAssetNotFound)
	}
	return &asset, nil
}

// List lists all assets
func (r *assetRepository) List(ctx context.Context) ([]*models.Asset, error) {
	var assets []*models.Asset
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&assets).Error; err != nil {
		return nil, translate(err, domain.ErrAssetNotFound)
	}
	return assets, nil
}

// UpdateStatus sets the status of an existing asset
func (r *assetRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.Select("id").First(&asset, id).Error; err != nil {
			return translate(err, domain.ErrAssetNotFound)
		}
		err := tx.Model(&models.Asset{}).Where("id = ?", id).Update("status", status).Error
		return translate(err, domain.ErrAssetNotFound)
	})
}

// Delete removes an asset that no work order or work request references
func (r *assetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.Select("id").First(&asset, id).Error; err != nil {
			return translate(err, domain.ErrAssetNotFound)
		}

		for _, ref := range []interface{}{&models.WorkOrder{}, &models.WorkRequest{}} {
			var count int64
			if err := tx.Model(ref).Where("asset_id = ?", id).Count(&count).Error; err != nil {
				return translate(err, domain.ErrAssetNotFound)
			}
			if count > 0 {
				return domain.ErrReferentialConflict
			}
		}

		return translate(tx.Delete(&models.Asset{}, id).Error, domain.ErrAssetNotFound)
	})
}
