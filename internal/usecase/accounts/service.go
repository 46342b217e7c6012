package accounts

import (
	"context"

	"github.com/assetbook/backend/internal/domain"
)

// AccountService exposes the account command surface. Accounts are the tenant
// identities everything else is scoped to, so these operations are unscoped.
type AccountService struct {
	accounts domain.AccountRepository
	ids      domain.IDGenerator
}

// NewAccountService creates a new AccountService instance
func NewAccountService(accounts domain.AccountRepository, ids domain.IDGenerator) *AccountService {
	return &AccountService{accounts: accounts, ids: ids}
}

// Create persists a new account and returns the stored row.
func (s *AccountService) Create(ctx context.Context, username, email string) (*domain.Account, error) {
	account := &domain.Account{
		ID:       s.ids.NewID(),
		Username: username,
		Email:    email,
	}
	return s.accounts.Create(ctx, account)
}

// List returns all accounts, newest first.
func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

// GetByID retrieves an account by id.
func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// Update mutates username and email.
func (s *AccountService) Update(ctx context.Context, id, username, email string) (*domain.Account, error) {
	return s.accounts.Update(ctx, id, username, email)
}

// Delete removes the account.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}
