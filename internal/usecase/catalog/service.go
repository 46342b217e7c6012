package catalog

import (
	"context"

	"github.com/assetbook/backend/internal/domain"
)

// AssetMasterService exposes the catalog command surface. Catalog rows are
// global; portfolio entities reference them by id without validation, so
// deleting one here can leave dangling references on the portfolio side.
type AssetMasterService struct {
	assets domain.AssetMasterRepository
	ids    domain.IDGenerator
}

// NewAssetMasterService creates a new AssetMasterService instance
func NewAssetMasterService(assets domain.AssetMasterRepository, ids domain.IDGenerator) *AssetMasterService {
	return &AssetMasterService{assets: assets, ids: ids}
}

// Create persists a new catalog asset and returns the stored row.
func (s *AssetMasterService) Create(ctx context.Context, name string, tickerSymbol *string) (*domain.AssetMaster, error) {
	asset := &domain.AssetMaster{
		ID:           s.ids.NewID(),
		Name:         name,
		TickerSymbol: tickerSymbol,
	}
	return s.assets.Create(ctx, asset)
}

// List returns all catalog assets, newest first.
func (s *AssetMasterService) List(ctx context.Context) ([]*domain.AssetMaster, error) {
	return s.assets.List(ctx)
}

// GetByID retrieves a catalog asset by id.
func (s *AssetMasterService) GetByID(ctx context.Context, id string) (*domain.AssetMaster, error) {
	return s.assets.GetByID(ctx, id)
}

// Update mutates name and ticker symbol.
func (s *AssetMasterService) Update(ctx context.Context, id, name string, tickerSymbol *string) (*domain.AssetMaster, error) {
	return s.assets.Update(ctx, id, name, tickerSymbol)
}

// Delete removes the catalog asset.
func (s *AssetMasterService) Delete(ctx context.Context, id string) error {
	return s.assets.Delete(ctx, id)
}
