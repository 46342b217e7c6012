package domain

import "time"

// Account is the tenant identity. Every portfolio entity is scoped to exactly
// one account via its AccountID column.
type Account struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
