package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/invtrack/inventory-ledger-api/internal/api/handler/v1"
	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/response"
	"github.com/invtrack/inventory-ledger-api/internal/config"
	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

type fakeAuthService struct {
	users map[string]string // username -> password
}

func (f *fakeAuthService) Signup(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.users[user.Username]; exists {
		return domain.User{}, service.ErrUsernameExists
	}

	f.users[user.Username] = user.Password
	user.ID = "user-1"

	return user, nil
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (domain.User, error) {
	if stored, ok := f.users[username]; !ok || stored != password {
		return domain.User{}, service.ErrAuthenticationFailed
	}

	return domain.User{ID: "user-1", Username: username, Role: domain.RoleStaff, Name: "Demo Staff"}, nil
}

func newAuthTestRouter(svc v1.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	conf := &config.APIConfig{JWTSigningKey: "test-signing-key"}
	handler := v1.NewAuthHandler(conf, svc)
	router.POST("/auth/signup", handler.HandleSignup)
	router.POST("/auth/login", handler.HandleLogin)

	return router
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	svc := &fakeAuthService{users: map[string]string{"staff": "staff1234"}}
	router := newAuthTestRouter(svc)

	body := `{"username":"staff","password":"staff1234"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var loginResp response.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, "staff", loginResp.User.Username)
}

func TestAuthHandler_HandleLogin_WrongCredentials(t *testing.T) {
	svc := &fakeAuthService{users: map[string]string{"staff": "staff1234"}}
	router := newAuthTestRouter(svc)

	for _, body := range []string{
		`{"username":"staff","password":"wrong"}`,
		`{"username":"nobody","password":"staff1234"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	}
}

func TestAuthHandler_HandleSignup(t *testing.T) {
	svc := &fakeAuthService{users: map[string]string{}}
	router := newAuthTestRouter(svc)

	body := `{"username":"alice","password":"secret1234","confirm_password":"secret1234","name":"Alice","role":"staff"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
}

func TestAuthHandler_HandleSignup_WeakPassword(t *testing.T) {
	svc := &fakeAuthService{users: map[string]string{}}
	router := newAuthTestRouter(svc)

	// No digit, fails the password pattern.
	body := `{"username":"alice","password":"secretpass","confirm_password":"secretpass","name":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, svc.users)
}
