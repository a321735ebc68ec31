// Package identityprovider talks to the external auth service's admin API.
package identityprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	vendorapp "github.com/greenhub/backend/internal/application/vendor"
	"github.com/greenhub/backend/internal/domain/shared"
	infraconfig "github.com/greenhub/backend/internal/infrastructure/config"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 1 * 1024 * 1024

var _ vendorapp.IdentityProvider = (*Client)(nil)

// Client is an HTTP client for the identity provider's admin user API.
// Vendor login credentials are provisioned here when an application is
// approved; the returned user id is linked to the vendor row.
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new identity provider admin client
func NewClient(cfg *infraconfig.IdentityProviderConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		adminToken: cfg.AdminToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("identityprovider"),
	}
}

type createUserRequest struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type createUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateCredential provisions a login for an approved vendor and returns the
// provider-side user id
func (c *Client) CreateCredential(ctx context.Context, input vendorapp.CredentialInput) (uuid.UUID, error) {
	payload := createUserRequest{
		Email:        input.Email,
		Password:     input.Password,
		EmailConfirm: true,
		UserMetadata: map[string]any{
			"role":          "vendor",
			"vendor_id":     input.VendorID.String(),
			"business_name": input.BusinessName,
		},
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identityprovider: failed to marshal request: %w", err)
	}

	url := c.baseURL + "/admin/users"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return uuid.Nil, fmt.Errorf("identityprovider: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("credential provisioning request failed",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return uuid.Nil, fmt.Errorf("identityprovider: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("credential provisioning rejected",
			zap.String("email", input.Email),
			zap.Int("status", resp.StatusCode),
		)
		return uuid.Nil, fmt.Errorf("%w: status %d", shared.ErrUpstreamFailure, resp.StatusCode)
	}

	var out createUserResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return uuid.Nil, fmt.Errorf("identityprovider: failed to decode response: %w", err)
	}

	id, err := uuid.Parse(out.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identityprovider: invalid user id %q: %w", out.ID, err)
	}

	return id, nil
}
