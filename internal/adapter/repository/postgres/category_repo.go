package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/assetbook/backend/internal/domain"
)

// assetCategoryRepository implements domain.AssetCategoryRepository
type assetCategoryRepository struct {
	db *DB
}

// NewAssetCategoryRepository creates a new asset category repository
func NewAssetCategoryRepository(db *DB) domain.AssetCategoryRepository {
	return &assetCategoryRepository{db: db}
}

func scanAssetCategory(row scanner) (*domain.AssetCategory, error) {
	var category domain.AssetCategory
	var targetRatio float64

	if err := row.Scan(
		&category.ID,
		&category.AccountID,
		&category.Name,
		&targetRatio,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}

	ratio, err := fromStorage(targetRatio)
	if err != nil {
		return nil, fmt.Errorf("failed to decode target_ratio: %w", err)
	}
	category.TargetRatio = ratio

	return &category, nil
}

// Create inserts a new category and returns the stored row in one statement,
// so the insert cannot race a concurrent delete of the same id.
func (r *assetCategoryRepository) Create(ctx context.Context, category *domain.AssetCategory) (*domain.AssetCategory, error) {
	query := `
		INSERT INTO asset_categories (id, account_id, name, target_ratio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_id, name, target_ratio, created_at, updated_at
	`

	row := r.db.QueryRowContext(ctx, query,
		category.ID,
		category.AccountID,
		category.Name,
		toStorage(category.TargetRatio),
	)

	created, err := scanAssetCategory(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset category: %w", err)
	}

	return created, nil
}

// ListByAccount returns all categories for the account, newest first.
func (r *assetCategoryRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.AssetCategory, error) {
	query := `
		SELECT id, account_id, name, target_ratio, created_at, updated_at
		FROM asset_categories
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.AssetCategory
	for rows.Next() {
		category, err := scanAssetCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// GetByID retrieves a category by id, regardless of owner.
func (r *assetCategoryRepository) GetByID(ctx context.Context, id string) (*domain.AssetCategory, error) {
	query := `
		SELECT id, account_id, name, target_ratio, created_at, updated_at
		FROM asset_categories
		WHERE id = $1
	`

	category, err := scanAssetCategory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset category %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset category by ID: %w", err)
	}

	return category, nil
}

// Update mutates the category in a single account-scoped statement. Zero
// matched rows (missing id, or id owned by another account) reports
// domain.ErrNotFound without distinguishing the two.
func (r *assetCategoryRepository) Update(ctx context.Context, id, accountID, name string, targetRatio decimal.Decimal) (*domain.AssetCategory, error) {
	query := `
		UPDATE asset_categories
		SET name = $1, target_ratio = $2, updated_at = NOW()
		WHERE id = $3 AND account_id = $4
		RETURNING id, account_id, name, target_ratio, created_at, updated_at
	`

	updated, err := scanAssetCategory(r.db.QueryRowContext(ctx, query, name, toStorage(targetRatio), id, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset category %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update asset category: %w", err)
	}

	return updated, nil
}

// Delete removes the category in a single account-scoped statement. Groupings
// referencing the category keep their category_id.
func (r *assetCategoryRepository) Delete(ctx context.Context, id, accountID string) error {
	query := `
		DELETE FROM asset_categories
		WHERE id = $1 AND account_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete asset category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("asset category %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
