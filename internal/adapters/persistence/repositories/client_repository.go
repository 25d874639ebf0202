package repositories

import (
	"context"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
)

// clientRepository implements ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client
func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return translate(r.db.WithContext(ctx).Create(client).Error, domain.ErrClientNotFound)
}

// GetByID gets a client by ID
func (r *clientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, translate(err, domain.ErrClientNotFound)
	}
	return &client, nil
}

// List lists all clients
func (r *clientRepository) List(ctx context.Context) ([]*models.Client, error) {
	var clients []*models.Client
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error; err != nil {
		return nil, translate(err, domain.ErrClientNotFound)
	}
	return clients, nil
}

// DeleteCascade removes a client and its pending work requests
func (r *clientRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.Select("id").First(&client, id).Error; err != nil {
			return translate(err, domain.ErrClientNotFound)
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.WorkRequest{}).Error; err != nil {
			return translate(err, domain.ErrWorkRequestNotFound)
		}
		if err := tx.Delete(&models.Client{}, id).Error; err != nil {
			return translate(err, domain.ErrClientNotFound)
		}
		return nil
	})
}
