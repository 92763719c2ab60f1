package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/mocks"
)

func setupKeyRouter(keySvc domain.KeyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewKeyHandlers(keySvc)
	r := gin.New()
	r.POST("/api/generate-key", h.GenerateKey)
	r.POST("/api/validate-key", h.ValidateKey)
	r.GET("/api/keys", h.KeyHistory)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestKeyHandlers_GenerateKey(t *testing.T) {
	keySvc := mocks.NewMockKeyService()
	var captured domain.IssueKeyRequest
	keySvc.IssueKeyFunc = func(ctx context.Context, req domain.IssueKeyRequest) (*domain.IssuedKey, error) {
		captured = req
		return &domain.IssuedKey{
			Key:    &domain.APIKey{ID: 42, UserID: 7, Key: "MYAPP_AAAA1111-BBBB2222-CCCC3333"},
			Owner:  &domain.User{ID: 7, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Status: domain.StatusActive},
			Status: domain.StatusActive,
		}, nil
	}
	r := setupKeyRouter(keySvc)

	w := postJSON(t, r, "/api/generate-key", gin.H{
		"firstName": "Alice",
		"lastName":  "Ames",
		"email":     "alice@example.com",
		"appName":   "MyApp",
		"expiry":    "30",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MYAPP_AAAA1111-BBBB2222-CCCC3333", resp["apiKey"])
	assert.Equal(t, "MyApp", resp["appName"])
	assert.Equal(t, domain.StatusActive, resp["status"])
	assert.Equal(t, []interface{}{"read"}, resp["scopes"], "scopes default when omitted")

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "Alice Ames", user["fullName"])
	assert.Equal(t, "alice@example.com", user["email"])

	// the handler passed the defaulted scopes down
	assert.Equal(t, []string{"read"}, captured.Scopes)
	assert.Equal(t, "30", captured.Expiry)
}

func TestKeyHandlers_GenerateKey_Validation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{
			name: "missing email",
			body: gin.H{"firstName": "Alice", "lastName": "Ames", "appName": "MyApp"},
		},
		{
			name: "malformed email",
			body: gin.H{"firstName": "Alice", "lastName": "Ames", "email": "not-an-email", "appName": "MyApp"},
		},
		{
			name: "missing app name",
			body: gin.H{"firstName": "Alice", "lastName": "Ames", "email": "alice@example.com"},
		},
		{
			name: "missing names",
			body: gin.H{"email": "alice@example.com", "appName": "MyApp"},
		},
	}

	r := setupKeyRouter(mocks.NewMockKeyService())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/generate-key", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestKeyHandlers_GenerateKey_ServiceFailure(t *testing.T) {
	keySvc := mocks.NewMockKeyService()
	keySvc.IssueKeyFunc = func(ctx context.Context, req domain.IssueKeyRequest) (*domain.IssuedKey, error) {
		return nil, assert.AnError
	}
	r := setupKeyRouter(keySvc)

	w := postJSON(t, r, "/api/generate-key", gin.H{
		"firstName": "Alice", "lastName": "Ames", "email": "alice@example.com", "appName": "MyApp",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// internals never leak into the response body
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestKeyHandlers_ValidateKey(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour)
	keySvc := mocks.NewMockKeyService()
	keySvc.ValidateKeyFunc = func(ctx context.Context, rawKey string) (*domain.KeyValidation, error) {
		if rawKey != "KNOWN-KEY" {
			return nil, domain.ErrKeyNotFound
		}
		return &domain.KeyValidation{
			Valid:  true,
			Status: domain.StatusActive,
			Key:    &domain.APIKey{ID: 1, UserID: 7, Key: rawKey, ExpiresAt: &expiresAt},
		}, nil
	}
	r := setupKeyRouter(keySvc)

	w := postJSON(t, r, "/api/validate-key", gin.H{"apiKey": "KNOWN-KEY"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["valid"])
	assert.Equal(t, domain.StatusActive, resp["status"])
	assert.Equal(t, "KNOWN-KEY", resp["apiKey"])
}

func TestKeyHandlers_ValidateKey_NotFound(t *testing.T) {
	r := setupKeyRouter(mocks.NewMockKeyService())

	w := postJSON(t, r, "/api/validate-key", gin.H{"apiKey": "NO-SUCH-KEY"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["valid"])
}

func TestKeyHandlers_ValidateKey_MissingKey(t *testing.T) {
	r := setupKeyRouter(mocks.NewMockKeyService())

	w := postJSON(t, r, "/api/validate-key", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyHandlers_KeyHistory(t *testing.T) {
	now := time.Now()
	keySvc := mocks.NewMockKeyService()
	keySvc.KeysByEmailFunc = func(ctx context.Context, email string) ([]domain.KeyWithStatus, error) {
		return []domain.KeyWithStatus{
			{Key: &domain.APIKey{ID: 2, UserID: 7, Key: "NEWER", CreatedAt: now}, Status: domain.StatusActive},
			{Key: &domain.APIKey{ID: 1, UserID: 7, Key: "OLDER", CreatedAt: now.Add(-time.Hour)}, Status: domain.StatusInactive},
		}, nil
	}
	r := setupKeyRouter(keySvc)

	req := httptest.NewRequest(http.MethodGet, "/api/keys?email=alice%40example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Email string `json:"email"`
		Count int    `json:"count"`
		Keys  []struct {
			APIKey string `json:"apiKey"`
			Status string `json:"status"`
		} `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Keys, 2)
	assert.Equal(t, "NEWER", resp.Keys[0].APIKey)
	assert.Equal(t, domain.StatusInactive, resp.Keys[1].Status)
}

func TestKeyHandlers_KeyHistory_MissingEmail(t *testing.T) {
	r := setupKeyRouter(mocks.NewMockKeyService())

	req := httptest.NewRequest(http.MethodGet, "/api/keys", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
