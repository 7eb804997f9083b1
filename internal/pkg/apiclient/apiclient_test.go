package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_InjectsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []string{}})
	}))
	defer srv.Close()

	c := New(srv.URL, TokenFunc(func() string { return "token-123" }))

	var out []string
	require.NoError(t, c.Get(context.Background(), "/api/employees", &out))
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClient_UnauthorizedFiresCallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	fired := false
	c := New(srv.URL, TokenFunc(func() string { return "stale" }),
		WithOnUnauthorized(func() { fired = true }))

	err := c.Get(context.Background(), "/api/employees", nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, fired, "the unauthorized callback must fire on 401")
}

func TestClient_APIErrorCarriesDetails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    "VALIDATION_ERROR",
				"message": "Validation failed",
				"details": map[string]string{"date": "date is required"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	err := c.Post(context.Background(), "/api/attendance", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Equal(t, "date is required", apiErr.Details["date"])
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["username"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"user":  map[string]string{"id": "user-1", "username": "admin"},
				"token": "token-123",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	result, err := c.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "token-123", result.Token)
	assert.Equal(t, "admin", result.User.Username)
}
