package repository

import (
	"context"
	"fmt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository/dao"
)

var ErrSupplierNotFound = dao.ErrSupplierNotFound

type SupplierDAO interface {
	Insert(ctx context.Context, supplier dao.Supplier) (dao.Supplier, error)
	FindByID(ctx context.Context, id string) (dao.Supplier, error)
	FindAll(ctx context.Context) ([]dao.Supplier, error)
}

type SupplierRepository struct {
	dao SupplierDAO
}

func NewSupplierRepository(dao SupplierDAO) *SupplierRepository {
	return &SupplierRepository{
		dao: dao,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	created, err := r.dao.Insert(ctx, dao.Supplier{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Contact: supplier.Contact,
	})
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (domain.Supplier, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SupplierRepository) FindAll(ctx context.Context) ([]domain.Supplier, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	suppliers := make([]domain.Supplier, 0, len(found))
	for _, supplier := range found {
		suppliers = append(suppliers, r.daoToDomain(supplier))
	}

	return suppliers, nil
}

func (r *SupplierRepository) daoToDomain(s dao.Supplier) domain.Supplier {
	return domain.Supplier{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
