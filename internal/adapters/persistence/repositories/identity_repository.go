package repositories

import (
	"context"
	"fmt"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"

	"gorm.io/gorm"
)

// identityRepository implements IdentityRepository interface
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

// FindByEmail looks the email up in the table backing role
func (r *identityRepository) FindByEmail(ctx context.Context, role domain.Role, email string) (*Identity, error) {
	q := r.db.WithContext(ctx).Where("email = ?", email)

	switch role {
	case domain.RoleAdmin:
		var a models.Administrator
		if err := q.First(&a).Error; err != nil {
			return nil, translate(err, domain.ErrNotFound)
		}
		return &Identity{ID: a.ID, Name: a.Name, Email: a.Email, PasswordHash: a.Password, Role: role}, nil
	case domain.RoleWorker:
		var w models.Worker
		if err := q.Omit("image").First(&w).Error; err != nil {
			return nil, translate(err, domain.ErrNotFound)
		}
		return &Identity{ID: w.ID, Name: w.Name, Email: w.Email, PasswordHash: w.Password, Role: role}, nil
	case domain.RoleClient:
		var c models.Client
		if err := q.Omit("image").First(&c).Error; err != nil {
			return nil, translate(err, domain.ErrNotFound)
		}
		return &Identity{ID: c.ID, Name: c.Name, Email: c.Email, PasswordHash: c.Password, Role: role}, nil
	}

	return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
}

// EmailTaken reports whether any identity table already holds email
func (r *identityRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	for _, m := range []interface{}{&models.Administrator{}, &models.Worker{}, &models.Client{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(m).Where("email = ?", email).Count(&count).Error; err != nil {
			return false, translate(err, domain.ErrNotFound)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// CreateAdministrator inserts an administrator row
func (r *identityRepository) CreateAdministrator(ctx context.Context, admin *models.Administrator) error {
	return translate(r.db.WithContext(ctx).Create(admin).Error, domain.ErrNotFound)
}
