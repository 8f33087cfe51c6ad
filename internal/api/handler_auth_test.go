package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

func setupAuthRouter(s *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := newTestHandler(s)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/register", handler.Register)
	return r
}

func seedUser(t *testing.T, authorized bool) *stubStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	return &stubStore{users: map[string]model.User{
		"jana@example.com": {
			ID:           "u1",
			Name:         "Jana Novak",
			Email:        "jana@example.com",
			PasswordHash: string(hash),
			Role:         model.RoleTechnician,
			IsAuthorized: authorized,
		},
	}}
}

func TestLogin(t *testing.T) {
	router := setupAuthRouter(seedUser(t, true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"jana@example.com","password":"hunter22"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email        string `json:"email"`
			PasswordHash string `json:"passwordHash"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jana@example.com", resp.User.Email)
	assert.Empty(t, resp.User.PasswordHash)
}

func TestLogin_BadCredentials(t *testing.T) {
	router := setupAuthRouter(seedUser(t, true))

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"jana@example.com","password":"nope"}`},
		{"unknown email", `{"email":"ghost@example.com","password":"hunter22"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(tt.body))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			// Unknown email and wrong password are indistinguishable.
			assert.JSONEq(t, `{"error":"incorrect email or password"}`, w.Body.String())
		})
	}
}

func TestLogin_UnauthorizedAccount(t *testing.T) {
	router := setupAuthRouter(seedUser(t, false))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"jana@example.com","password":"hunter22"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister(t *testing.T) {
	s := &stubStore{}
	router := setupAuthRouter(s)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register",
		strings.NewReader(`{"name":"Petr Maly","email":"petr@example.com","password":"secret1"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	created, ok := s.users["petr@example.com"]
	require.True(t, ok)
	assert.Equal(t, model.RoleTechnician, created.Role)
	assert.False(t, created.IsAuthorized)
	assert.NotEqual(t, "secret1", created.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := setupAuthRouter(seedUser(t, true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register",
		strings.NewReader(`{"name":"Jana","email":"jana@example.com","password":"secret1"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
