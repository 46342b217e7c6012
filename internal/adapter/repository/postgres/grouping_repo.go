package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/assetbook/backend/internal/domain"
)

// groupingRepository implements domain.GroupingRepository
type groupingRepository struct {
	db *DB
}

// NewGroupingRepository creates a new grouping repository
func NewGroupingRepository(db *DB) domain.GroupingRepository {
	return &groupingRepository{db: db}
}

func scanGrouping(row scanner) (*domain.Grouping, error) {
	var grouping domain.Grouping

	if err := row.Scan(
		&grouping.ID,
		&grouping.AccountID,
		&grouping.AssetMasterID,
		&grouping.CategoryID,
		&grouping.CreatedAt,
		&grouping.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &grouping, nil
}

// Create inserts a new grouping and returns the stored row. The referenced
// asset_master_id and category_id are opaque here; existence is not checked.
func (r *groupingRepository) Create(ctx context.Context, grouping *domain.Grouping) (*domain.Grouping, error) {
	query := `
		INSERT INTO asset_groupings (id, account_id, asset_master_id, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_id, asset_master_id, category_id, created_at, updated_at
	`

	row := r.db.QueryRowContext(ctx, query,
		grouping.ID,
		grouping.AccountID,
		grouping.AssetMasterID,
		grouping.CategoryID,
	)

	created, err := scanGrouping(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create grouping: %w", err)
	}

	return created, nil
}

// ListByAccount returns all groupings for the account, newest first.
func (r *groupingRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Grouping, error) {
	query := `
		SELECT id, account_id, asset_master_id, category_id, created_at, updated_at
		FROM asset_groupings
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groupings: %w", err)
	}
	defer rows.Close()

	var groupings []*domain.Grouping
	for rows.Next() {
		grouping, err := scanGrouping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grouping: %w", err)
		}
		groupings = append(groupings, grouping)
	}

	return groupings, rows.Err()
}

// GetByID retrieves a grouping by id, regardless of owner.
func (r *groupingRepository) GetByID(ctx context.Context, id string) (*domain.Grouping, error) {
	query := `
		SELECT id, account_id, asset_master_id, category_id, created_at, updated_at
		FROM asset_groupings
		WHERE id = $1
	`

	grouping, err := scanGrouping(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("grouping %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get grouping by ID: %w", err)
	}

	return grouping, nil
}

// Update reassigns the grouping to another category in a single account-scoped
// statement.
func (r *groupingRepository) Update(ctx context.Context, id, accountID, categoryID string) (*domain.Grouping, error) {
	query := `
		UPDATE asset_groupings
		SET category_id = $1, updated_at = NOW()
		WHERE id = $2 AND account_id = $3
		RETURNING id, account_id, asset_master_id, category_id, created_at, updated_at
	`

	updated, err := scanGrouping(r.db.QueryRowContext(ctx, query, categoryID, id, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("grouping %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update grouping: %w", err)
	}

	return updated, nil
}

// Delete removes the grouping in a single account-scoped statement.
func (r *groupingRepository) Delete(ctx context.Context, id, accountID string) error {
	query := `
		DELETE FROM asset_groupings
		WHERE id = $1 AND account_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete grouping: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("grouping %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
