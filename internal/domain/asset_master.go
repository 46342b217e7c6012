package domain

import "time"

// AssetMaster is a catalog entry for a tradeable instrument. Catalog rows are
// global (not account scoped); portfolio entities reference them by ID only.
type AssetMaster struct {
	ID           string
	Name         string
	TickerSymbol *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
