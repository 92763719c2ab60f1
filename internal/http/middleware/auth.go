package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// AuthMW wraps the admin service for bearer-token middleware
type AuthMW struct {
	adminSvc domain.AdminService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(adminSvc domain.AdminService) *AuthMW {
	return &AuthMW{adminSvc: adminSvc}
}

// WithJWT returns the bearer-token middleware. Verification is stateless:
// the token is checked against its signature and embedded expiry only, so
// no store call happens on this path.
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := mw.adminSvc.Verify(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		c.Set("admin_id", fmt.Sprintf("%d", claims.AdminID))
		c.Set("admin_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}
