package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
)

type QueryStockRepository interface {
	GetStockLevel(ctx context.Context, itemID string) (domain.StockLevel, error)
	AllStockLevels(ctx context.Context) ([]domain.StockLevel, error)
	Transactions(ctx context.Context, itemID string) ([]domain.Transaction, error)
	LowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error)
	Stats(ctx context.Context, lowStockThreshold int) (domain.DashboardStats, error)
}

// QueryService serves read-only projections over the store. Nothing in this
// service mutates state.
type QueryService struct {
	repo             QueryStockRepository
	defaultThreshold int
}

func NewQueryService(repo QueryStockRepository, defaultLowStockThreshold int) *QueryService {
	return &QueryService{
		repo:             repo,
		defaultThreshold: defaultLowStockThreshold,
	}
}

// CurrentQuantity returns the on-hand quantity for an item, or 0 when no
// stock record exists. Item creation always allocates a record, so absence
// is tolerated rather than treated as an error here.
func (s *QueryService) CurrentQuantity(ctx context.Context, itemID string) (int, error) {
	level, err := s.repo.GetStockLevel(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return 0, nil
		}

		return 0, fmt.Errorf("s.repo.GetStockLevel -> %w", err)
	}

	return level.Quantity, nil
}

func (s *QueryService) AllStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	levels, err := s.repo.AllStockLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.AllStockLevels -> %w", err)
	}

	return levels, nil
}

// Transactions returns the ledger most recent first, optionally filtered to
// one item. The descending order is part of the contract.
func (s *QueryService) Transactions(ctx context.Context, itemID string) ([]domain.Transaction, error) {
	txs, err := s.repo.Transactions(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Transactions -> %w", err)
	}

	return txs, nil
}

// LowStock returns items whose quantity is below the threshold. A threshold
// of zero or less falls back to the configured default.
func (s *QueryService) LowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}

	items, err := s.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("s.repo.LowStock -> %w", err)
	}

	return items, nil
}

func (s *QueryService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx, s.defaultThreshold)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}
