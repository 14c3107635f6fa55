package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	userRepo "roomify/database/repository/user"
	"roomify/models"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token and loads the caller's identity
// into the gin context (userID, role). The role claim inside the token is
// never trusted on its own: the stored user is the authority, with a short
// Redis cache keyed by token hash in front of the lookup.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			parts := strings.SplitN(cached, ":", 2)
			if len(parts) == 2 && parts[0] == userID {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Set("role", parts[1])
				c.Next()
				return
			}
		} else if err != redis.Nil {
			zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		_ = authCache.Set(ctx, cacheKey, fmt.Sprintf("%s:%s", usr.ID, usr.Role), time.Hour).Err()

		c.Set("userID", usr.ID)
		c.Set("role", string(usr.Role))
		c.Next()
	}
}

// AdminMiddleware requires a caller already authenticated by AuthMiddleware
// to hold the admin role. The check runs server-side against the stored
// user's role; the front-end role gate is a UX convenience only.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's ID from the gin context.
func CallerID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// CallerIsAdmin reports whether the authenticated caller holds the admin role.
func CallerIsAdmin(c *gin.Context) bool {
	v, ok := c.Get("role")
	return ok && v == string(models.RoleAdmin)
}
