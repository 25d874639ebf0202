package handlers

import (
	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/core/services"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AssetHandler handles asset registry endpoints
type AssetHandler struct {
	assetService *services.AssetService
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// AssetRequest represents asset fields
type AssetRequest struct {
	Name   string `json:"name" form:"name"`
	Status string `json:"status" form:"status"`
}

// CreateAsset handles asset creation
// @Summary Create asset
// @Tags Assets
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Asset name"
// @Param status formData string true "Asset status"
// @Param image formData file false "Asset image"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /createAsset [post]
func (h *AssetHandler) CreateAsset(c *fiber.Ctx) error {
	var req AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	image, err := receiveFile(c, "image")
	if err != nil {
		return respondError(c, err, "create asset")
	}

	asset, err := h.assetService.CreateAsset(c.Context(), middleware.GetPrincipal(c), req.Name, req.Status, image)
	if err != nil {
		return respondError(c, err, "create asset")
	}

	return response.Success(c, "Asset created successfully", asset)
}

// ListAssets handles listing all assets
// @Summary List assets
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *fiber.Ctx) error {
	assets, err := h.assetService.ListAssets(c.Context())
	if err != nil {
		return respondError(c, err, "list assets")
	}
	return response.Success(c, "Assets retrieved successfully", assets)
}

// UpdateAssetStatus handles asset status changes
// @Summary Update asset status
// @Tags Assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Param body body AssetRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /updateAssetStatus/{id} [put]
func (h *AssetHandler) UpdateAssetStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "update asset status")
	}

	var req AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.assetService.UpdateAssetStatus(c.Context(), middleware.GetPrincipal(c), id, req.Status); err != nil {
		return respondError(c, err, "update asset status")
	}
	return response.Success(c, "Asset status updated successfully", fiber.Map{"id": id, "status": req.Status})
}

// DeleteAsset handles asset deletion
// @Summary Delete asset
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /deleteAsset/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "delete asset")
	}
	if err := h.assetService.DeleteAsset(c.Context(), middleware.GetPrincipal(c), id); err != nil {
		return respondError(c, err, "delete asset")
	}
	return response.Success(c, "Asset deleted successfully", nil)
}
