package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding records how much of a catalog asset an account currently owns.
// CurrentAmount is a mutable snapshot, not a ledger: updates overwrite it in
// place and no history is retained.
type Holding struct {
	ID            string
	AccountID     string
	AssetMasterID string
	CurrentAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
