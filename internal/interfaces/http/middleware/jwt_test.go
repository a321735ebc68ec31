package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenhub/backend/internal/domain/identity"
	"github.com/greenhub/backend/internal/infrastructure/auth"
	"github.com/greenhub/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-chars",
		ExpirationHours: 1,
		Issuer:          "greenhub-test",
	})
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()
	token, _, err := jwtService.Generate(userID, "vendor@example.com", "vendor")
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(jwtService, nil))
	router.GET("/test", func(c *gin.Context) {
		assert.Equal(t, userID, GetJWTUserID(c))
		assert.Equal(t, "vendor@example.com", GetJWTEmail(c))
		assert.Equal(t, "vendor", GetJWTRole(c))
		require.NotNil(t, GetJWTClaims(c))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newTestJWTService(), nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newTestJWTService(), nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_TamperedToken(t *testing.T) {
	jwtService := newTestJWTService()
	token, _, err := jwtService.Generate(uuid.New(), "a@x.com", "admin")
	require.NoError(t, err)

	// Forge the token by signing with a different secret
	other := auth.NewJWTService(config.JWTConfig{
		Secret:          "another-secret-key-entirely-32ch!",
		ExpirationHours: 1,
		Issuer:          "greenhub-test",
	})
	forged, _, err := other.Generate(uuid.New(), "a@x.com", "admin")
	require.NoError(t, err)
	require.NotEqual(t, token, forged)

	router := gin.New()
	router.Use(JWTAuth(jwtService, nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	jwtService := newTestJWTService()

	router := gin.New()
	router.Use(JWTAuth(jwtService, nil))
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("admin passes", func(t *testing.T) {
		token, _, err := jwtService.Generate(uuid.New(), "admin@example.com", string(identity.RoleAdmin))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("vendor rejected", func(t *testing.T) {
		token, _, err := jwtService.Generate(uuid.New(), "vendor@example.com", string(identity.RoleVendor))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})
}

func TestRequireVendor(t *testing.T) {
	jwtService := newTestJWTService()

	router := gin.New()
	router.Use(JWTAuth(jwtService, nil))
	router.GET("/vendor", RequireVendor(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	token, _, err := jwtService.Generate(uuid.New(), "customer@example.com", string(identity.RoleCustomer))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/vendor", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
