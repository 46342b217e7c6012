package portfolio

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/assetbook/backend/internal/domain"
)

// The portfolio services are thin orchestration: they assign a fresh
// identifier on create and delegate verbatim to the matching repository.
// Request-level validation happens upstream in the HTTP layer; ownership
// enforcement happens downstream in the account-scoped statements.

// CreateCategoryInput carries the caller-validated fields for a new category.
type CreateCategoryInput struct {
	Name        string
	TargetRatio decimal.Decimal
}

// UpdateCategoryInput carries the caller-validated fields for a category update.
type UpdateCategoryInput struct {
	Name        string
	TargetRatio decimal.Decimal
}

// CategoryService exposes the asset category command surface.
type CategoryService struct {
	categories domain.AssetCategoryRepository
	ids        domain.IDGenerator
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(categories domain.AssetCategoryRepository, ids domain.IDGenerator) *CategoryService {
	return &CategoryService{categories: categories, ids: ids}
}

// Create persists a new category for the account and returns the stored row.
func (s *CategoryService) Create(ctx context.Context, accountID string, input CreateCategoryInput) (*domain.AssetCategory, error) {
	category := &domain.AssetCategory{
		ID:          s.ids.NewID(),
		AccountID:   accountID,
		Name:        input.Name,
		TargetRatio: input.TargetRatio,
	}
	return s.categories.Create(ctx, category)
}

// ListByAccount returns the account's categories, newest first.
func (s *CategoryService) ListByAccount(ctx context.Context, accountID string) ([]*domain.AssetCategory, error) {
	return s.categories.ListByAccount(ctx, accountID)
}

// GetByID retrieves a category by id.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.AssetCategory, error) {
	return s.categories.GetByID(ctx, id)
}

// Update mutates a category owned by the account.
func (s *CategoryService) Update(ctx context.Context, id, accountID string, input UpdateCategoryInput) (*domain.AssetCategory, error) {
	return s.categories.Update(ctx, id, accountID, input.Name, input.TargetRatio)
}

// Delete removes a category owned by the account.
func (s *CategoryService) Delete(ctx context.Context, id, accountID string) error {
	return s.categories.Delete(ctx, id, accountID)
}

// CreateGroupingInput carries the caller-validated fields for a new grouping.
type CreateGroupingInput struct {
	AssetMasterID string
	CategoryID    string
}

// GroupingService exposes the grouping command surface.
type GroupingService struct {
	groupings domain.GroupingRepository
	ids       domain.IDGenerator
}

// NewGroupingService creates a new GroupingService instance
func NewGroupingService(groupings domain.GroupingRepository, ids domain.IDGenerator) *GroupingService {
	return &GroupingService{groupings: groupings, ids: ids}
}

// Create persists a new grouping for the account and returns the stored row.
func (s *GroupingService) Create(ctx context.Context, accountID string, input CreateGroupingInput) (*domain.Grouping, error) {
	grouping := &domain.Grouping{
		ID:            s.ids.NewID(),
		AccountID:     accountID,
		AssetMasterID: input.AssetMasterID,
		CategoryID:    input.CategoryID,
	}
	return s.groupings.Create(ctx, grouping)
}

// ListByAccount returns the account's groupings, newest first.
func (s *GroupingService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Grouping, error) {
	return s.groupings.ListByAccount(ctx, accountID)
}

// GetByID retrieves a grouping by id.
func (s *GroupingService) GetByID(ctx context.Context, id string) (*domain.Grouping, error) {
	return s.groupings.GetByID(ctx, id)
}

// Update reassigns a grouping owned by the account to another category.
func (s *GroupingService) Update(ctx context.Context, id, accountID, categoryID string) (*domain.Grouping, error) {
	return s.groupings.Update(ctx, id, accountID, categoryID)
}

// Delete removes a grouping owned by the account.
func (s *GroupingService) Delete(ctx context.Context, id, accountID string) error {
	return s.groupings.Delete(ctx, id, accountID)
}

// CreateHoldingInput carries the caller-validated fields for a new holding.
type CreateHoldingInput struct {
	AssetMasterID string
	CurrentAmount decimal.Decimal
}

// HoldingService exposes the holding command surface.
type HoldingService struct {
	holdings domain.HoldingRepository
	ids      domain.IDGenerator
}

// NewHoldingService creates a new HoldingService instance
func NewHoldingService(holdings domain.HoldingRepository, ids domain.IDGenerator) *HoldingService {
	return &HoldingService{holdings: holdings, ids: ids}
}

// Create persists a new holding for the account and returns the stored row.
func (s *HoldingService) Create(ctx context.Context, accountID string, input CreateHoldingInput) (*domain.Holding, error) {
	holding := &domain.Holding{
		ID:            s.ids.NewID(),
		AccountID:     accountID,
		AssetMasterID: input.AssetMasterID,
		CurrentAmount: input.CurrentAmount,
	}
	return s.holdings.Create(ctx, holding)
}

// ListByAccount returns the account's holdings, newest first.
func (s *HoldingService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error) {
	return s.holdings.ListByAccount(ctx, accountID)
}

// GetByID retrieves a holding by id.
func (s *HoldingService) GetByID(ctx context.Context, id string) (*domain.Holding, error) {
	return s.holdings.GetByID(ctx, id)
}

// Update overwrites the current amount of a holding owned by the account.
func (s *HoldingService) Update(ctx context.Context, id, accountID string, currentAmount decimal.Decimal) (*domain.Holding, error) {
	return s.holdings.Update(ctx, id, accountID, currentAmount)
}

// Delete removes a holding owned by the account.
func (s *HoldingService) Delete(ctx context.Context, id, accountID string) error {
	return s.holdings.Delete(ctx, id, accountID)
}
