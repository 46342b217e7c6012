package domain

import "time"

// Grouping binds a catalog asset to an asset category within an account.
// AssetMasterID points at a catalog row owned by another subsystem and is not
// validated for existence here; CategoryID may dangle after the category is
// deleted (no cascading delete is performed).
type Grouping struct {
	ID            string
	AccountID     string
	AssetMasterID string
	CategoryID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
