package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClerkUserKey is the gin context key holding the caller's external identity id.
const ClerkUserKey = "clerk_user_id"

func AuthMiddleWare() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization is not found!"})
			return
		}

		// verify token
		token := strings.TrimPrefix(authHeader, "Bearer ")
		clerkID, err := VerifySessionToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx.Set(ClerkUserKey, clerkID)
		ctx.Next()
	}
}
