package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type Supplier struct {
	ID string `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	Contact string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SupplierDAO struct {
	db *gorm.DB
}

func NewSupplierDAO(db *gorm.DB) *SupplierDAO {
	return &SupplierDAO{
		db: db,
	}
}

func (d *SupplierDAO) Insert(ctx context.Context, supplier Supplier) (Supplier, error) {
	result := d.db.WithContext(ctx).Create(&supplier)
	if result.Error != nil {
		return Supplier{}, result.Error
	}

	return supplier, nil
}

func (d *SupplierDAO) FindByID(ctx context.Context, id string) (Supplier, error) {
	var supplier Supplier

	result := d.db.WithContext(ctx).First(&supplier, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Supplier{}, ErrSupplierNotFound
		}

		return Supplier{}, result.Error
	}

	return supplier, nil
}

func (d *SupplierDAO) FindAll(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier

	result := d.db.WithContext(ctx).Order("created_at").Find(&suppliers)
	if result.Error != nil {
		return nil, result.Error
	}

	return suppliers, nil
}

func (d *SupplierDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Supplier{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
