package services

import (
	"context"
	"fmt"
	"strings"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
)

// AssetService handles the asset registry
type AssetService struct {
	assetRepo repositories.AssetRepository
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo repositories.AssetRepository) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// CreateAsset registers a physical asset. Status is free text.
func (s *AssetService) CreateAsset(ctx context.Context, actor *domain.Principal, name, status string, image []byte) (*models.Asset, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	name, status = strings.TrimSpace(name), strings.TrimSpace(status)
	if name == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if status == "" {
		return nil, fmt.Errorf("%w: status", domain.ErrMissingField)
	}

	asset := &models.Asset{Name: name, Status: status, Image: image}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	log.Infof("✅ Asset created: %s [%s]", asset.Name, asset.Status)
	return asset, nil
}

// ListAssets lists all assets
func (s *AssetService) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	return s.assetRepo.List(ctx)
}

// UpdateAssetStatus changes an asset's status
func (s *AssetService) UpdateAssetStatus(ctx context.Context, actor *domain.Principal, id uint, status string) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return fmt.Errorf("%w: status", domain.ErrMissingField)
	}
	return s.assetRepo.UpdateStatus(ctx, id, status)
}

// DeleteAsset removes an asset nothing references
func (s *AssetService) DeleteAsset(ctx context.Context, actor *domain.Principal, id uint) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Infof("🗑️ Asset %d deleted", id)
	return nil
}
