package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/assetbook/backend/internal/domain"
)

// assetMasterRepository implements domain.AssetMasterRepository
type assetMasterRepository struct {
	db *DB
}

// NewAssetMasterRepository creates a new catalog asset repository
func NewAssetMasterRepository(db *DB) domain.AssetMasterRepository {
	return &assetMasterRepository{db: db}
}

func scanAssetMaster(row scanner) (*domain.AssetMaster, error) {
	var asset domain.AssetMaster
	var ticker sql.NullString

	if err := row.Scan(
		&asset.ID,
		&asset.Name,
		&ticker,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if ticker.Valid {
		asset.TickerSymbol = &ticker.String
	}

	return &asset, nil
}

// Create inserts a new catalog asset and returns the stored row.
func (r *assetMasterRepository) Create(ctx context.Context, asset *domain.AssetMaster) (*domain.AssetMaster, error) {
	query := `
		INSERT INTO asset_master (id, name, ticker_symbol)
		VALUES ($1, $2, $3)
		RETURNING id, name, ticker_symbol, created_at, updated_at
	`

	var ticker any
	if asset.TickerSymbol != nil {
		ticker = *asset.TickerSymbol
	}

	created, err := scanAssetMaster(r.db.QueryRowContext(ctx, query, asset.ID, asset.Name, ticker))
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog asset: %w", err)
	}

	return created, nil
}

// List returns all catalog assets, newest first.
func (r *assetMasterRepository) List(ctx context.Context) ([]*domain.AssetMaster, error) {
	query := `
		SELECT id, name, ticker_symbol, created_at, updated_at
		FROM asset_master
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.AssetMaster
	for rows.Next() {
		asset, err := scanAssetMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog asset: %w", err)
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

// GetByID retrieves a catalog asset by id.
func (r *assetMasterRepository) GetByID(ctx context.Context, id string) (*domain.AssetMaster, error) {
	query := `
		SELECT id, name, ticker_symbol, created_at, updated_at
		FROM asset_master
		WHERE id = $1
	`

	asset, err := scanAssetMaster(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get catalog asset by ID: %w", err)
	}

	return asset, nil
}

// Update mutates name and ticker symbol and returns the refreshed row.
func (r *assetMasterRepository) Update(ctx context.Context, id, name string, tickerSymbol *string) (*domain.AssetMaster, error) {
	query := `
		UPDATE asset_master
		SET name = $1, ticker_symbol = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, ticker_symbol, created_at, updated_at
	`

	var ticker any
	if tickerSymbol != nil {
		ticker = *tickerSymbol
	}

	updated, err := scanAssetMaster(r.db.QueryRowContext(ctx, query, name, ticker, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update catalog asset: %w", err)
	}

	return updated, nil
}

// Delete removes the catalog asset. Groupings and holdings referencing it are
// left in place.
func (r *assetMasterRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM asset_master
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete catalog asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("catalog asset %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
