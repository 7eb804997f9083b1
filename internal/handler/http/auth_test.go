package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/auth"
	"github.com/hr-staff/hr-staff-backend-go/internal/handler/http/middleware"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	resp auth.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}
	return f.resp, f.err
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{resp: auth.LoginResponse{
		User:  auth.UserInfo{ID: "user-1", Username: "admin"},
		Token: "token-123",
	}}
	handler := NewAuthHandler(svc)

	body, err := json.Marshal(auth.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "token-123", resp.Data.Token)
	assert.Equal(t, "admin", resp.Data.User.Username)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&fakeAuthService{err: auth.ErrInvalidCredentials})

	body, err := json.Marshal(auth.LoginRequest{Username: "admin", Password: "wrong"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_BadBody(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Logout successful", resp.Message)
}

func protectedTestRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		r.Get("/protected", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	r := protectedTestRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	token, _, err := jwtService.GenerateAccessToken("user-1", "admin")
	require.NoError(t, err)

	r := protectedTestRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	r := protectedTestRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
