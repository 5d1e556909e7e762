package service

import (
	"context"
	"fmt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/pkg/idgen"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
)

var (
	ErrItemSKUExists    = repository.ErrItemSKUExists
	ErrItemNotFound     = repository.ErrItemNotFound
	ErrSupplierNotFound = repository.ErrSupplierNotFound
)

type CatalogItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, id string) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
}

type CatalogSupplierRepository interface {
	Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	FindByID(ctx context.Context, id string) (domain.Supplier, error)
	FindAll(ctx context.Context) ([]domain.Supplier, error)
}

// CatalogService owns item and supplier master data. Items are never
// deleted, and suppliers currently have no update or delete at all.
type CatalogService struct {
	items     CatalogItemRepository
	suppliers CatalogSupplierRepository
	ids       idgen.Generator
}

func NewCatalogService(items CatalogItemRepository, suppliers CatalogSupplierRepository, ids idgen.Generator) *CatalogService {
	return &CatalogService{
		items:     items,
		suppliers: suppliers,
		ids:       ids,
	}
}

// CreateItem registers a new item. The repository creates the item's stock
// record at quantity zero in the same write, and rejects duplicate SKUs.
func (s *CatalogService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	item.ID = s.ids.NewID()
	if item.Status == "" {
		item.Status = domain.ItemStatusActive
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.items.Create -> %w", err)
	}

	return created, nil
}

// UpdateItem applies changes to an existing item. ID and SKU are immutable.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, changes domain.ItemChanges) (domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.items.FindByID -> %w", err)
	}

	item.Name = changes.Name
	item.Category = changes.Category
	item.UOM = changes.UOM
	item.Description = changes.Description
	item.Status = changes.Status

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.items.Update -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.items.FindByID -> %w", err)
	}

	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.items.FindAll -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	supplier.ID = s.ids.NewID()

	created, err := s.suppliers.Create(ctx, supplier)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("s.suppliers.Create -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.suppliers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.suppliers.FindAll -> %w", err)
	}

	return suppliers, nil
}
