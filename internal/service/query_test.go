package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

// fakeQueryRepo returns canned projections and records the thresholds it was
// asked for.
type fakeQueryRepo struct {
	levels        map[string]int
	txs           []domain.Transaction
	lowStock      []domain.LowStockItem
	stats         domain.DashboardStats
	gotThresholds []int
}

func (f *fakeQueryRepo) GetStockLevel(_ context.Context, itemID string) (domain.StockLevel, error) {
	quantity, ok := f.levels[itemID]
	if !ok {
		return domain.StockLevel{}, repository.ErrStockNotFound
	}

	return domain.StockLevel{ItemID: itemID, Quantity: quantity}, nil
}

func (f *fakeQueryRepo) AllStockLevels(_ context.Context) ([]domain.StockLevel, error) {
	levels := make([]domain.StockLevel, 0, len(f.levels))
	for itemID, quantity := range f.levels {
		levels = append(levels, domain.StockLevel{ItemID: itemID, Quantity: quantity})
	}

	return levels, nil
}

func (f *fakeQueryRepo) Transactions(_ context.Context, itemID string) ([]domain.Transaction, error) {
	if itemID == "" {
		return f.txs, nil
	}

	var filtered []domain.Transaction
	for _, tx := range f.txs {
		if tx.ItemID == itemID {
			filtered = append(filtered, tx)
		}
	}

	return filtered, nil
}

func (f *fakeQueryRepo) LowStock(_ context.Context, threshold int) ([]domain.LowStockItem, error) {
	f.gotThresholds = append(f.gotThresholds, threshold)

	return f.lowStock, nil
}

func (f *fakeQueryRepo) Stats(_ context.Context, lowStockThreshold int) (domain.DashboardStats, error) {
	f.gotThresholds = append(f.gotThresholds, lowStockThreshold)

	return f.stats, nil
}

func TestQueryService_CurrentQuantity_MissingRecordIsZero(t *testing.T) {
	repo := &fakeQueryRepo{levels: map[string]int{"item-1": 7}}
	svc := service.NewQueryService(repo, 5)
	ctx := context.Background()

	quantity, err := svc.CurrentQuantity(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, 7, quantity)

	quantity, err = svc.CurrentQuantity(ctx, "ghost")
	require.NoError(t, err, "a missing stock record is not an error for reads")
	assert.Equal(t, 0, quantity)
}

func TestQueryService_LowStock_DefaultThreshold(t *testing.T) {
	repo := &fakeQueryRepo{}
	svc := service.NewQueryService(repo, 5)
	ctx := context.Background()

	_, err := svc.LowStock(ctx, 0)
	require.NoError(t, err)

	_, err = svc.LowStock(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 3}, repo.gotThresholds, "zero falls back to the configured default")
}

func TestQueryService_Transactions_ReadsAreIdempotent(t *testing.T) {
	base := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeQueryRepo{
		txs: []domain.Transaction{
			{ID: "tx-3", ItemID: "item-1", Delta: -1, CreatedAt: base.Add(2 * time.Hour)},
			{ID: "tx-2", ItemID: "item-2", Delta: 5, CreatedAt: base.Add(time.Hour)},
			{ID: "tx-1", ItemID: "item-1", Delta: 10, CreatedAt: base},
		},
	}
	svc := service.NewQueryService(repo, 5)
	ctx := context.Background()

	first, err := svc.Transactions(ctx, "item-1")
	require.NoError(t, err)
	second, err := svc.Transactions(ctx, "item-1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated reads without a commit must match")
	require.Len(t, first, 2)
	assert.Equal(t, "tx-3", first[0].ID)
	assert.Equal(t, "tx-1", first[1].ID)
}

func TestQueryService_DashboardStats(t *testing.T) {
	repo := &fakeQueryRepo{
		stats: domain.DashboardStats{ItemCount: 3, SupplierCount: 2, TotalUnits: 40, LowStockCount: 1},
	}
	svc := service.NewQueryService(repo, 5)

	stats, err := svc.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ItemCount)
	assert.Equal(t, int64(40), stats.TotalUnits)
	assert.Equal(t, []int{5}, repo.gotThresholds)
}
