package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/assetbook/backend/internal/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, id, username, email string) (*domain.Account, error) {
	args := m.Called(ctx, id, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubIDGenerator struct {
	id string
}

func (s stubIDGenerator) NewID() string { return s.id }

func TestAccountService_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	service := NewAccountService(repo, stubIDGenerator{id: "acc-id-1"})

	stored := &domain.Account{ID: "acc-id-1", Username: "maria", Email: "maria@example.com"}
	repo.On("Create", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.ID == "acc-id-1" && a.Username == "maria" && a.Email == "maria@example.com"
	})).Return(stored, nil)

	created, err := service.Create(ctx, "maria", "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, stored, created)
	repo.AssertExpectations(t)
}

func TestAccountService_GetByIDMissingReportsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	service := NewAccountService(repo, stubIDGenerator{id: "unused"})

	repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	_, err := service.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountService_UpdateDelegates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	service := NewAccountService(repo, stubIDGenerator{id: "unused"})

	updated := &domain.Account{ID: "acc-1", Username: "maria2", Email: "maria2@example.com"}
	repo.On("Update", ctx, "acc-1", "maria2", "maria2@example.com").Return(updated, nil)

	got, err := service.Update(ctx, "acc-1", "maria2", "maria2@example.com")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
