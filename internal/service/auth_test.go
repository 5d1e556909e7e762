package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

type fakeUserRepo struct {
	byUsername map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.byUsername[user.Username]; exists {
		return domain.User{}, repository.ErrUsernameExists
	}

	f.byUsername[user.Username] = user

	return user, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo, &seqIDs{})

	created, err := svc.Signup(context.Background(), domain.User{
		Username: "alice",
		Password: "secret1234",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.RoleStaff, created.Role, "role defaults to staff")

	stored := repo.byUsername["alice"]
	assert.NotEqual(t, "secret1234", stored.Password, "password must never be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1234")))
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo, &seqIDs{})
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Username: "alice", Password: "secret1234", Name: "Alice"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "secret1234")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Login_FailureIsIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo, &seqIDs{})
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Username: "alice", Password: "secret1234", Name: "Alice"})
	require.NoError(t, err)

	_, wrongPasswordErr := svc.Login(ctx, "alice", "wrong-pass")
	_, unknownUserErr := svc.Login(ctx, "mallory", "secret1234")

	assert.ErrorIs(t, wrongPasswordErr, service.ErrAuthenticationFailed)
	assert.ErrorIs(t, unknownUserErr, service.ErrAuthenticationFailed)
	assert.Equal(t, wrongPasswordErr.Error(), unknownUserErr.Error(),
		"the error must not reveal which field mismatched")
}

func TestAuthService_EnsureAdmin_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo, &seqIDs{})
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "admin12345", "System Admin"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "admin12345", "System Admin"))

	assert.Len(t, repo.byUsername, 1)
	assert.Equal(t, domain.RoleAdmin, repo.byUsername["admin"].Role)
}
