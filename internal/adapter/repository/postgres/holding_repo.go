package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/assetbook/backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

func scanHolding(row scanner) (*domain.Holding, error) {
	var holding domain.Holding
	var currentAmount float64

	if err := row.Scan(
		&holding.ID,
		&holding.AccountID,
		&holding.AssetMasterID,
		&currentAmount,
		&holding.CreatedAt,
		&holding.UpdatedAt,
	); err != nil {
		return nil, err
	}

	amount, err := fromStorage(currentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decode current_amount: %w", err)
	}
	holding.CurrentAmount = amount

	return &holding, nil
}

// Create inserts a new holding and returns the stored row.
func (r *holdingRepository) Create(ctx context.Context, holding *domain.Holding) (*domain.Holding, error) {
	query := `
		INSERT INTO holdings (id, account_id, asset_master_id, current_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_id, asset_master_id, current_amount, created_at, updated_at
	`

	row := r.db.QueryRowContext(ctx, query,
		holding.ID,
		holding.AccountID,
		holding.AssetMasterID,
		toStorage(holding.CurrentAmount),
	)

	created, err := scanHolding(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}

	return created, nil
}

// ListByAccount returns all holdings for the account, newest first.
func (r *holdingRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error) {
	query := `
		SELECT id, account_id, asset_master_id, current_amount, created_at, updated_at
		FROM holdings
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*domain.Holding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, holding)
	}

	return holdings, rows.Err()
}

// GetByID retrieves a holding by id, regardless of owner.
func (r *holdingRepository) GetByID(ctx context.Context, id string) (*domain.Holding, error) {
	query := `
		SELECT id, account_id, asset_master_id, current_amount, created_at, updated_at
		FROM holdings
		WHERE id = $1
	`

	holding, err := scanHolding(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("holding %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get holding by ID: %w", err)
	}

	return holding, nil
}

// Update overwrites the current amount in a single account-scoped statement.
// No history of previous amounts is kept.
func (r *holdingRepository) Update(ctx context.Context, id, accountID string, currentAmount decimal.Decimal) (*domain.Holding, error) {
	query := `
		UPDATE holdings
		SET current_amount = $1, updated_at = NOW()
		WHERE id = $2 AND account_id = $3
		RETURNING id, account_id, asset_master_id, current_amount, created_at, updated_at
	`

	updated, err := scanHolding(r.db.QueryRowContext(ctx, query, toStorage(currentAmount), id, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("holding %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}

	return updated, nil
}

// Delete removes the holding in a single account-scoped statement.
func (r *holdingRepository) Delete(ctx context.Context, id, accountID string) error {
	query := `
		DELETE FROM holdings
		WHERE id = $1 AND account_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("holding %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
