package assetservice

import (
	"context"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type AssetService interface {
	Register(ctx context.Context, req RegisterAssetReq, ownerID uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, assetID, actorID uuid.UUID, roles []string) (models.Asset, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Asset, error)
}

type assetService struct {
	repo AssetRepository
}

func NewAssetService(repo AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) Register(ctx context.Context, req RegisterAssetReq, ownerID uuid.UUID) (uuid.UUID, error) {
	asset := models.Asset{
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		OwnerUserID:  ownerID,
		Status:       models.AssetNew,
	}
	return s.repo.Insert(ctx, asset)
}

func (s *assetService) GetByID(ctx context.Context, assetID, actorID uuid.UUID, roles []string) (models.Asset, error) {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return models.Asset{}, err
	}
	if asset.OwnerUserID != actorID && !models.HasRole(roles, models.ManagerRole) {
		return models.Asset{}, errors.Wrap(models.ErrForbidden, "asset belongs to another user")
	}
	return asset, nil
}

func (s *assetService) ListOwn(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *assetService) ListAll(ctx context.Context, limit, offset int) ([]models.Asset, error) {
	return s.repo.ListAll(ctx, limit, offset)
}
