package repository

import (
	"context"
	"fmt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository/dao"
)

var (
	ErrUsernameExists = dao.ErrUsernameExists
	ErrUserNotFound   = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Role:     string(user.Role),
		Name:     user.Name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      domain.Role(u.Role),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
