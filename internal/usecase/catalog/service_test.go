package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/assetbook/backend/internal/domain"
)

// MockAssetMasterRepository is a mock implementation of AssetMasterRepository for testing
type MockAssetMasterRepository struct {
	mock.Mock
}

func (m *MockAssetMasterRepository) Create(ctx context.Context, asset *domain.AssetMaster) (*domain.AssetMaster, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetMaster), args.Error(1)
}

func (m *MockAssetMasterRepository) List(ctx context.Context) ([]*domain.AssetMaster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AssetMaster), args.Error(1)
}

func (m *MockAssetMasterRepository) GetByID(ctx context.Context, id string) (*domain.AssetMaster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetMaster), args.Error(1)
}

func (m *MockAssetMasterRepository) Update(ctx context.Context, id, name string, tickerSymbol *string) (*domain.AssetMaster, error) {
	args := m.Called(ctx, id, name, tickerSymbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetMaster), args.Error(1)
}

func (m *MockAssetMasterRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubIDGenerator struct {
	id string
}

func (s stubIDGenerator) NewID() string { return s.id }

func TestAssetMasterService_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetMasterRepository)
	service := NewAssetMasterService(repo, stubIDGenerator{id: "am-id-1"})

	ticker := "VWCE"
	stored := &domain.AssetMaster{ID: "am-id-1", Name: "Vanguard FTSE All-World", TickerSymbol: &ticker}
	repo.On("Create", ctx, mock.MatchedBy(func(a *domain.AssetMaster) bool {
		return a.ID == "am-id-1" && a.Name == "Vanguard FTSE All-World" && a.TickerSymbol != nil && *a.TickerSymbol == "VWCE"
	})).Return(stored, nil)

	created, err := service.Create(ctx, "Vanguard FTSE All-World", &ticker)
	require.NoError(t, err)
	assert.Equal(t, stored, created)
	repo.AssertExpectations(t)
}

func TestAssetMasterService_CreateWithoutTicker(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetMasterRepository)
	service := NewAssetMasterService(repo, stubIDGenerator{id: "am-id-2"})

	stored := &domain.AssetMaster{ID: "am-id-2", Name: "Cash"}
	repo.On("Create", ctx, mock.MatchedBy(func(a *domain.AssetMaster) bool {
		return a.ID == "am-id-2" && a.Name == "Cash" && a.TickerSymbol == nil
	})).Return(stored, nil)

	created, err := service.Create(ctx, "Cash", nil)
	require.NoError(t, err)
	assert.Nil(t, created.TickerSymbol)
}

func TestAssetMasterService_DeleteMissingReportsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetMasterRepository)
	service := NewAssetMasterService(repo, stubIDGenerator{id: "unused"})

	repo.On("Delete", ctx, "missing").Return(domain.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, "missing"), domain.ErrNotFound)
}
