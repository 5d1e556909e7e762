package repository

import (
	"context"
	"fmt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository/dao"
)

var (
	ErrItemSKUExists = dao.ErrItemSKUExists
	ErrItemNotFound  = dao.ErrItemNotFound
)

type ItemDAO interface {
	InsertWithStock(ctx context.Context, item dao.Item) (dao.Item, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, id string) (dao.Item, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

// Create persists the item and its zero-quantity stock record together.
func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.InsertWithStock(ctx, dao.Item{
		ID:          item.ID,
		SKU:         item.SKU,
		Name:        item.Name,
		Category:    item.Category,
		UOM:         item.UOM,
		Description: item.Description,
		Status:      string(item.Status),
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.InsertWithStock -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, dao.Item{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		UOM:         item.UOM,
		Description: item.Description,
		Status:      string(item.Status),
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, item := range found {
		items = append(items, r.daoToDomain(item))
	}

	return items, nil
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:          i.ID,
		SKU:         i.SKU,
		Name:        i.Name,
		Category:    i.Category,
		UOM:         i.UOM,
		Description: i.Description,
		Status:      domain.ItemStatus(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
