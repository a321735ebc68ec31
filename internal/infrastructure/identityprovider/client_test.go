package identityprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	vendorapp "github.com/greenhub/backend/internal/application/vendor"
	"github.com/greenhub/backend/internal/domain/shared"
	infraconfig "github.com/greenhub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&infraconfig.IdentityProviderConfig{
		BaseURL:        baseURL,
		AdminToken:     "service-token",
		TimeoutSeconds: 2,
	}, zap.NewNop())
}

func TestClient_CreateCredential(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "farm@example.com", body["email"])
		assert.Equal(t, true, body["email_confirm"])
		meta, ok := body["user_metadata"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "vendor", meta["role"])
		assert.Equal(t, vendorID.String(), meta["vendor_id"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": userID.String(), "email": "farm@example.com"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	got, err := client.CreateCredential(context.Background(), vendorapp.CredentialInput{
		VendorID:     vendorID,
		Email:        "farm@example.com",
		Password:     "temp-password",
		BusinessName: "Green Farms",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestClient_CreateCredential_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"duplicate user"}`, http.StatusConflict)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.CreateCredential(context.Background(), vendorapp.CredentialInput{
		VendorID: uuid.New(),
		Email:    "dup@example.com",
		Password: "pw",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, shared.ErrUpstreamFailure.Message)
}

func TestClient_CreateCredential_BadID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "not-a-uuid"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.CreateCredential(context.Background(), vendorapp.CredentialInput{
		VendorID: uuid.New(),
		Email:    "x@example.com",
		Password: "pw",
	})
	assert.Error(t, err)
}

func TestClient_CreateCredential_ServerDown(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.CreateCredential(context.Background(), vendorapp.CredentialInput{
		VendorID: uuid.New(),
		Email:    "x@example.com",
		Password: "pw",
	})
	assert.Error(t, err)
}
