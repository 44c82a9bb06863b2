package assetservice

import (
	"context"
	"database/sql"
	"fmt"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type AssetRepository interface {
	Insert(ctx context.Context, asset models.Asset) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Asset, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Asset, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetColumns = `id, name, brand, model, serial_number, owner_user_id, status, created_at`

func (r *PostgresAssetRepository) Insert(ctx context.Context, asset models.Asset) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `
		INSERT INTO assets (name, brand, model, serial_number, owner_user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id
	`, asset.Name, asset.Brand, asset.Model, asset.SerialNumber, asset.OwnerUserID, asset.Status)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert asset: %w", err)
	}
	return id, nil
}

func (r *PostgresAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT `+assetColumns+` FROM assets WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, errors.Wrap(models.ErrNotFound, "asset not found")
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

func (r *PostgresAssetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+` FROM assets
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return assets, nil
}

func (r *PostgresAssetRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+` FROM assets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return assets, nil
}
