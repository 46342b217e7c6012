package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetCategory is a named allocation bucket owned by a single account.
// TargetRatio is the intended proportion of the portfolio, e.g. 0.60.
// Category names are NOT unique per account; duplicates are allowed.
type AssetCategory struct {
	ID          string
	AccountID   string
	Name        string
	TargetRatio decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
