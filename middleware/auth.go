package middleware

import (
	"net/http"
	"strings"

	"aster/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards the mutating API group with a device session
// token. There are no user accounts; the subject is the device that opened
// the session.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		deviceID, err := utils.ExtractDeviceIDFromToken(tokenString)
		if err != nil || deviceID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("deviceID", deviceID)
		c.Next()
	}
}
