package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrItemSKUExists = errors.New("item SKU already exists")
	ErrItemNotFound  = errors.New("item not found")
)

type Item struct {
	ID string `gorm:"primaryKey"`

	SKU         string `gorm:"unique;not null"`
	Name        string `gorm:"not null"`
	Category    string
	UOM         string
	Description string
	Status      string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

// InsertWithStock creates the item together with its zero-quantity stock
// record in one database transaction, so both rows appear or neither does.
func (d *ItemDAO) InsertWithStock(ctx context.Context, item Item) (Item, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		level := StockLevel{ItemID: item.ID, Quantity: 0}

		return tx.Create(&level).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `unique constraint "uni_items_sku"`) {
			return Item{}, ErrItemSKUExists
		}

		return Item{}, err
	}

	return item, nil
}

// Update overwrites the mutable columns. ID and SKU are never touched.
func (d *ItemDAO) Update(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Model(&Item{ID: item.ID}).Updates(map[string]interface{}{
		"name":        item.Name,
		"category":    item.Category,
		"uom":         item.UOM,
		"description": item.Description,
		"status":      item.Status,
	})
	if result.Error != nil {
		return Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return d.FindByID(ctx, item.ID)
}

func (d *ItemDAO) FindByID(ctx context.Context, id string) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Order("created_at").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Item{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
