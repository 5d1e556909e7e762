package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrStockNotFound = errors.New("stock record not found")

type StockLevel struct {
	ItemID   string `gorm:"primaryKey"`
	Quantity int    `gorm:"not null"`

	UpdatedAt time.Time
}

// Transaction rows are append-only. There is deliberately no update or
// delete method on this table anywhere in the codebase.
type Transaction struct {
	ID string `gorm:"primaryKey"`

	ItemID    string `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Delta     int    `gorm:"not null"`
	Reference string
	UserID    string `gorm:"not null"`
	UserName  string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index"`
}

// LowStockRow is the scan target for the low-stock join.
type LowStockRow struct {
	Item
	Quantity int
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) FindByItemID(ctx context.Context, itemID string) (StockLevel, error) {
	var level StockLevel

	result := d.db.WithContext(ctx).First(&level, "item_id = ?", itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockLevel{}, ErrStockNotFound
		}

		return StockLevel{}, result.Error
	}

	return level, nil
}

func (d *StockDAO) FindAll(ctx context.Context) ([]StockLevel, error) {
	var levels []StockLevel

	result := d.db.WithContext(ctx).Order("item_id").Find(&levels)
	if result.Error != nil {
		return nil, result.Error
	}

	return levels, nil
}

// CommitTransaction sets the item's stock quantity and appends the ledger row
// in one database transaction. Either both writes land or neither does.
func (d *StockDAO) CommitTransaction(ctx context.Context, tx Transaction, newQuantity int) (Transaction, error) {
	err := d.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		result := db.Model(&StockLevel{}).
			Where("item_id = ?", tx.ItemID).
			Update("quantity", newQuantity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStockNotFound
		}

		return db.Create(&tx).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

// FindTransactions returns ledger rows newest first. The descending order is
// a contract the UI depends on; ties on created_at fall back to id so the
// result is stable. An empty itemID returns rows for all items.
func (d *StockDAO) FindTransactions(ctx context.Context, itemID string) ([]Transaction, error) {
	var txs []Transaction

	query := d.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if itemID != "" {
		query = query.Where("item_id = ?", itemID)
	}

	result := query.Find(&txs)
	if result.Error != nil {
		return nil, result.Error
	}

	return txs, nil
}

func (d *StockDAO) FindLowStock(ctx context.Context, threshold int) ([]LowStockRow, error) {
	var rows []LowStockRow

	result := d.db.WithContext(ctx).
		Table("stock_levels").
		Select("items.*, stock_levels.quantity").
		Joins("JOIN items ON items.id = stock_levels.item_id").
		Where("stock_levels.quantity < ?", threshold).
		Order("stock_levels.quantity, items.sku").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *StockDAO) SumQuantities(ctx context.Context) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).
		Model(&StockLevel{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

func (d *StockDAO) CountBelow(ctx context.Context, threshold int) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&StockLevel{}).
		Where("quantity < ?", threshold).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
