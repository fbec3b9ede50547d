// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	providerRepo "bookwise/database/repository/provider"
	"bookwise/utils"
)

const (
	authCachePrefix = "auth:"
	authCacheTTL    = 5 * time.Minute
)

// JWTAuthMiddleware validates the bearer token for provider surfaces. The
// token's hash must match the one stored on the tenant, so logging in again
// or revoking invalidates older tokens. Validated hashes are cached in Redis
// with a sliding TTL to keep the document store off the hot path.
func JWTAuthMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == subject {
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Debug("failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("providerID", cached)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Warn("auth cache lookup failed", zap.Error(err))
		}

		prov, err := repo.GetByTokenHash(ctx, computedHash)
		if err != nil || prov == nil || prov.ID != subject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked or provider not found"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, prov.ID, authCacheTTL).Err(); err != nil {
			logger.Debug("failed to set auth cache", zap.Error(err))
		}

		c.Set("providerID", prov.ID)
		c.Next()
	}
}

// ProviderID returns the authenticated tenant id set by JWTAuthMiddleware.
func ProviderID(c *gin.Context) string {
	return c.GetString("providerID")
}
