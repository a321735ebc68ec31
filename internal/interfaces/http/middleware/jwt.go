package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/identity"
	"github.com/greenhub/backend/internal/infrastructure/auth"
	"github.com/greenhub/backend/internal/infrastructure/logger"
	"github.com/greenhub/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTEmailKey   = "jwt_email"
	JWTRoleKey    = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTAuth returns middleware that requires a valid signed access token.
// The token signature is always verified; unsigned or tampered tokens are
// rejected with 401.
func JWTAuth(jwtService *auth.JWTService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, log, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, log, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, log, "Missing token")
			return
		}

		claims, err := jwtService.Validate(tokenString)
		if err != nil {
			if log != nil {
				log.Warn("Token validation failed",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path))
			}
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				message = "Token has expired"
			}
			abortUnauthorized(c, log, message)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.Subject)
		c.Set(JWTEmailKey, claims.Email)
		c.Set(JWTRoleKey, claims.Role)

		// Also attach the user to the request context for logging
		ctx := c.Request.Context()
		reqLog := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, reqLog, claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole returns middleware that rejects authenticated callers whose
// token does not carry the given role. Must run after JWTAuth.
func RequireRole(role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetJWTRole(c) != string(role) {
			requestID := c.GetString("request_id")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden,
				"Insufficient role for this operation",
				requestID,
			))
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts the route to admin accounts
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin)
}

// RequireVendor restricts the route to vendor accounts
func RequireVendor() gin.HandlerFunc {
	return RequireRole(identity.RoleVendor)
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized,
		message,
		requestID,
	))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the authenticated user ID from context
func GetJWTUserID(c *gin.Context) uuid.UUID {
	if userID, exists := c.Get(JWTUserIDKey); exists {
		if s, ok := userID.(string); ok {
			if id, err := uuid.Parse(s); err == nil {
				return id
			}
		}
	}
	return uuid.Nil
}

// GetJWTEmail retrieves the authenticated email from context
func GetJWTEmail(c *gin.Context) string {
	if email, exists := c.Get(JWTEmailKey); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}

// GetJWTRole retrieves the authenticated role from context
func GetJWTRole(c *gin.Context) string {
	if role, exists := c.Get(JWTRoleKey); exists {
		if s, ok := role.(string); ok {
			return s
		}
	}
	return ""
}
