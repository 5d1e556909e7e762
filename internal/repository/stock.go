package repository

import (
	"context"
	"fmt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository/dao"
)

var ErrStockNotFound = dao.ErrStockNotFound

type StockDAO interface {
	FindByItemID(ctx context.Context, itemID string) (dao.StockLevel, error)
	FindAll(ctx context.Context) ([]dao.StockLevel, error)
	CommitTransaction(ctx context.Context, tx dao.Transaction, newQuantity int) (dao.Transaction, error)
	FindTransactions(ctx context.Context, itemID string) ([]dao.Transaction, error)
	FindLowStock(ctx context.Context, threshold int) ([]dao.LowStockRow, error)
	SumQuantities(ctx context.Context) (int64, error)
	CountBelow(ctx context.Context, threshold int) (int64, error)
}

type ItemCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StockRepository is the ledger-facing slice of the entity store. Stock
// quantities leave this package read-only except through CommitStockChange.
type StockRepository struct {
	dao           StockDAO
	itemCounter   ItemCounter
	supplierCount ItemCounter
}

func NewStockRepository(dao StockDAO, items ItemCounter, suppliers ItemCounter) *StockRepository {
	return &StockRepository{
		dao:           dao,
		itemCounter:   items,
		supplierCount: suppliers,
	}
}

func (r *StockRepository) GetStockLevel(ctx context.Context, itemID string) (domain.StockLevel, error) {
	found, err := r.dao.FindByItemID(ctx, itemID)
	if err != nil {
		return domain.StockLevel{}, fmt.Errorf("r.dao.FindByItemID -> %w", err)
	}

	return r.levelToDomain(found), nil
}

func (r *StockRepository) AllStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	levels := make([]domain.StockLevel, 0, len(found))
	for _, level := range found {
		levels = append(levels, r.levelToDomain(level))
	}

	return levels, nil
}

// CommitStockChange is the only write path into stock quantities. The
// quantity update and the ledger append land in one database transaction.
func (r *StockRepository) CommitStockChange(ctx context.Context, tx domain.Transaction, newQuantity int) (domain.Transaction, error) {
	committed, err := r.dao.CommitTransaction(ctx, dao.Transaction{
		ID:        tx.ID,
		ItemID:    tx.ItemID,
		Type:      string(tx.Type),
		Delta:     tx.Delta,
		Reference: tx.Reference,
		UserID:    tx.UserID,
		UserName:  tx.UserName,
		CreatedAt: tx.CreatedAt,
	}, newQuantity)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.CommitTransaction -> %w", err)
	}

	return r.txToDomain(committed), nil
}

// Transactions returns the ledger newest first. Pass an empty itemID for all items.
func (r *StockRepository) Transactions(ctx context.Context, itemID string) ([]domain.Transaction, error) {
	found, err := r.dao.FindTransactions(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTransactions -> %w", err)
	}

	txs := make([]domain.Transaction, 0, len(found))
	for _, tx := range found {
		txs = append(txs, r.txToDomain(tx))
	}

	return txs, nil
}

func (r *StockRepository) LowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error) {
	rows, err := r.dao.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLowStock -> %w", err)
	}

	items := make([]domain.LowStockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.LowStockItem{
			Item: domain.Item{
				ID:          row.ID,
				SKU:         row.SKU,
				Name:        row.Name,
				Category:    row.Category,
				UOM:         row.UOM,
				Description: row.Description,
				Status:      domain.ItemStatus(row.Status),
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			Quantity: row.Quantity,
		})
	}

	return items, nil
}

func (r *StockRepository) Stats(ctx context.Context, lowStockThreshold int) (domain.DashboardStats, error) {
	itemCount, err := r.itemCounter.Count(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.itemCounter.Count -> %w", err)
	}

	supplierCount, err := r.supplierCount.Count(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.supplierCount.Count -> %w", err)
	}

	totalUnits, err := r.dao.SumQuantities(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.SumQuantities -> %w", err)
	}

	lowCount, err := r.dao.CountBelow(ctx, lowStockThreshold)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.CountBelow -> %w", err)
	}

	return domain.DashboardStats{
		ItemCount:     itemCount,
		SupplierCount: supplierCount,
		TotalUnits:    totalUnits,
		LowStockCount: lowCount,
	}, nil
}

func (r *StockRepository) levelToDomain(l dao.StockLevel) domain.StockLevel {
	return domain.StockLevel{
		ItemID:    l.ItemID,
		Quantity:  l.Quantity,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r *StockRepository) txToDomain(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:        t.ID,
		ItemID:    t.ItemID,
		Type:      domain.TransactionType(t.Type),
		Delta:     t.Delta,
		Reference: t.Reference,
		CreatedAt: t.CreatedAt,
		UserID:    t.UserID,
		UserName:  t.UserName,
	}
}
