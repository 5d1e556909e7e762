package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/pkg/idgen"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
)

var (
	ErrUsernameExists = repository.ErrUsernameExists

	// ErrAuthenticationFailed covers both an unknown username and a wrong
	// password. Callers must not be able to tell which field mismatched.
	ErrAuthenticationFailed = errors.New("invalid username or password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
	ids  idgen.Generator
}

func NewAuthService(repo AuthUserRepository, ids idgen.Generator) *AuthService {
	return &AuthService{
		repo: repo,
		ids:  ids,
	}
}

// Signup stores a new user with a bcrypt-hashed credential.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = string(hash)

	user.ID = s.ids.NewID()
	if user.Role == "" {
		user.Role = domain.RoleStaff
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrAuthenticationFailed
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrAuthenticationFailed
	}

	return user, nil
}

// EnsureAdmin seeds the bootstrap admin account if the username is free.
// Called once at startup so a fresh database is usable.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password, name string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	_, err = s.Signup(ctx, domain.User{
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
		Name:     name,
	})
	if err != nil {
		return fmt.Errorf("s.Signup -> %w", err)
	}

	return nil
}
