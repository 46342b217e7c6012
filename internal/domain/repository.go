package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// IDGenerator produces globally unique, opaque string identifiers for new
// entities. Identifiers carry no embedded meaning and are not sortable by
// creation time.
type IDGenerator interface {
	NewID() string
}

// AssetCategoryRepository defines persistence operations for asset categories.
//
// GetByID is intentionally unscoped (any caller who knows the id can read the
// row), while Update and Delete require a matching account_id in the same
// statement. A zero-row scoped mutation reports ErrNotFound whether the id is
// missing or owned by another account.
type AssetCategoryRepository interface {
	// Create persists a new category and returns the stored row, including
	// server-assigned timestamps.
	Create(ctx context.Context, category *AssetCategory) (*AssetCategory, error)

	// ListByAccount returns all categories for the account, newest first.
	ListByAccount(ctx context.Context, accountID string) ([]*AssetCategory, error)

	// GetByID retrieves a category by id, regardless of owner.
	GetByID(ctx context.Context, id string) (*AssetCategory, error)

	// Update mutates name and target ratio in a single account-scoped
	// statement and returns the refreshed row.
	Update(ctx context.Context, id, accountID, name string, targetRatio decimal.Decimal) (*AssetCategory, error)

	// Delete removes the category in a single account-scoped statement.
	// Groupings referencing the category are left untouched.
	Delete(ctx context.Context, id, accountID string) error
}

// GroupingRepository defines persistence operations for asset groupings.
type GroupingRepository interface {
	Create(ctx context.Context, grouping *Grouping) (*Grouping, error)
	ListByAccount(ctx context.Context, accountID string) ([]*Grouping, error)
	GetByID(ctx context.Context, id string) (*Grouping, error)

	// Update reassigns the grouping to another category.
	Update(ctx context.Context, id, accountID, categoryID string) (*Grouping, error)
	Delete(ctx context.Context, id, accountID string) error
}

// HoldingRepository defines persistence operations for holdings.
type HoldingRepository interface {
	Create(ctx context.Context, holding *Holding) (*Holding, error)
	ListByAccount(ctx context.Context, accountID string) ([]*Holding, error)
	GetByID(ctx context.Context, id string) (*Holding, error)

	// Update overwrites the current amount.
	Update(ctx context.Context, id, accountID string, currentAmount decimal.Decimal) (*Holding, error)
	Delete(ctx context.Context, id, accountID string) error
}

// AccountRepository defines persistence operations for accounts. Accounts are
// the tenants themselves, so none of these operations take a scoping id.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, id, username, email string) (*Account, error)
	Delete(ctx context.Context, id string) error
}

// AssetMasterRepository defines persistence operations for catalog assets.
type AssetMasterRepository interface {
	Create(ctx context.Context, asset *AssetMaster) (*AssetMaster, error)
	List(ctx context.Context) ([]*AssetMaster, error)
	GetByID(ctx context.Context, id string) (*AssetMaster, error)
	Update(ctx context.Context, id, name string, tickerSymbol *string) (*AssetMaster, error)
	Delete(ctx context.Context, id string) error
}
