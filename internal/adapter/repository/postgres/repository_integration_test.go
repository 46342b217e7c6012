//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetbook/backend/internal/domain"
)

var testDB *DB

func TestMain(m *testing.M) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres password=postgres dbname=assetbook_test sslmode=disable"
	}

	var err error
	testDB, err = NewDB(connStr)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to test database: %v", err))
	}
	defer testDB.Close()

	os.Exit(m.Run())
}

func newCategory(accountID, name, ratio string) *domain.AssetCategory {
	return &domain.AssetCategory{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Name:        name,
		TargetRatio: decimal.RequireFromString(ratio),
	}
}

func TestAssetCategoryRepository_CreateThenGetReturnsSameFields(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetCategoryRepository(testDB)

	created, err := repo.Create(ctx, newCategory("acc1", "Equities", "0.5"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "acc1", created.AccountID)
	assert.Equal(t, "Equities", created.Name)
	assert.True(t, created.TargetRatio.Equal(decimal.RequireFromString("0.5")))
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.AccountID, got.AccountID)
	assert.Equal(t, created.Name, got.Name)
	assert.True(t, created.TargetRatio.Equal(got.TargetRatio))
}

func TestAssetCategoryRepository_CrossAccountMutationsLookMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetCategoryRepository(testDB)

	created, err := repo.Create(ctx, newCategory("acc1", "Bonds", "0.3"))
	require.NoError(t, err)

	// Update under another account must fail and leave the row unmodified.
	_, err = repo.Update(ctx, created.ID, "acc2", "Hijacked", decimal.RequireFromString("0.99"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Delete under another account must fail the same way.
	err = repo.Delete(ctx, created.ID, "acc2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bonds", got.Name)
	assert.True(t, got.TargetRatio.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt), "updated_at must not move on failed mutations")
}

func TestAssetCategoryRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetCategoryRepository(testDB)

	created, err := repo.Create(ctx, newCategory("acc1", "Equities", "0.60"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// Wrong tenant first, per the ownership scenario.
	_, err = repo.Update(ctx, created.ID, "acc2", "Equities US", decimal.RequireFromString("0.55"))
	require.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := repo.Update(ctx, created.ID, "acc1", "Equities US", decimal.RequireFromString("0.55"))
	require.NoError(t, err)
	assert.Equal(t, "Equities US", updated.Name)
	assert.True(t, updated.TargetRatio.Equal(decimal.RequireFromString("0.55")))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt),
		"updated_at %s should be strictly later than created_at %s", updated.UpdatedAt, updated.CreatedAt)
}

func TestAssetCategoryRepository_ListNeverLeaksOtherAccounts(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetCategoryRepository(testDB)

	accA := "acc-" + uuid.NewString()
	accB := "acc-" + uuid.NewString()

	// Interleave creates across the two accounts.
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, newCategory(accA, fmt.Sprintf("A%d", i), "0.1"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newCategory(accB, fmt.Sprintf("B%d", i), "0.2"))
		require.NoError(t, err)
	}

	listed, err := repo.ListByAccount(ctx, accA)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, c := range listed {
		assert.Equal(t, accA, c.AccountID)
	}

	// Newest first.
	for i := 1; i < len(listed); i++ {
		assert.False(t, listed[i-1].CreatedAt.Before(listed[i].CreatedAt))
	}
}

func TestAssetCategoryRepository_DeleteNonexistentLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetCategoryRepository(testDB)

	accountID := "acc-" + uuid.NewString()
	created, err := repo.Create(ctx, newCategory(accountID, "Cash", "0.1"))
	require.NoError(t, err)

	err = repo.Delete(ctx, uuid.NewString(), accountID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listed, err := repo.ListByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestGroupingRepository_DanglingCategoryReferencePersists(t *testing.T) {
	ctx := context.Background()
	categoryRepo := NewAssetCategoryRepository(testDB)
	groupingRepo := NewGroupingRepository(testDB)

	category, err := categoryRepo.Create(ctx, newCategory("acc1", "Equities", "0.5"))
	require.NoError(t, err)

	grouping, err := groupingRepo.Create(ctx, &domain.Grouping{
		ID:            uuid.NewString(),
		AccountID:     "acc1",
		AssetMasterID: uuid.NewString(),
		CategoryID:    category.ID,
	})
	require.NoError(t, err)

	// Deleting the category must NOT remove the grouping; the reference
	// dangles on purpose (no cascade, no FK).
	require.NoError(t, categoryRepo.Delete(ctx, category.ID, "acc1"))

	survivor, err := groupingRepo.GetByID(ctx, grouping.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, survivor.CategoryID)

	_, err = categoryRepo.GetByID(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGroupingRepository_ScopedUpdateReassignsCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupingRepository(testDB)

	created, err := repo.Create(ctx, &domain.Grouping{
		ID:            uuid.NewString(),
		AccountID:     "acc1",
		AssetMasterID: "am-1",
		CategoryID:    "cat-1",
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, "acc2", "cat-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := repo.Update(ctx, created.ID, "acc1", "cat-2")
	require.NoError(t, err)
	assert.Equal(t, "cat-2", updated.CategoryID)
	assert.Equal(t, "am-1", updated.AssetMasterID)
}

func TestHoldingRepository_AmountSurvivesStorageWithinTolerance(t *testing.T) {
	ctx := context.Background()
	repo := NewHoldingRepository(testDB)

	amount := decimal.RequireFromString("0.1")
	created, err := repo.Create(ctx, &domain.Holding{
		ID:            uuid.NewString(),
		AccountID:     "acc1",
		AssetMasterID: "am-1",
		CurrentAmount: amount,
	})
	require.NoError(t, err)

	// The column is double precision, so 0.1 does not survive exactly; only
	// a bounded error can be asserted.
	diff := created.CurrentAmount.Sub(amount).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.000000000001")),
		"storage error too large: %s", diff)

	half := decimal.RequireFromString("2.5")
	updated, err := repo.Update(ctx, created.ID, "acc1", half)
	require.NoError(t, err)
	assert.True(t, updated.CurrentAmount.Equal(half), "binary fraction should be exact, got %s", updated.CurrentAmount)
}

func TestHoldingRepository_DeleteScopedToAccount(t *testing.T) {
	ctx := context.Background()
	repo := NewHoldingRepository(testDB)

	created, err := repo.Create(ctx, &domain.Holding{
		ID:            uuid.NewString(),
		AccountID:     "acc1",
		AssetMasterID: "am-1",
		CurrentAmount: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.ErrorIs(t, repo.Delete(ctx, created.ID, "acc2"), domain.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, created.ID, "acc1"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
