package handlers

import (
	"net/http"
	"time"

	"aster/utils"

	"github.com/gin-gonic/gin"
)

const sessionTokenTTL = 24 * time.Hour

// OpenSessionHandler issues a device-scoped token for the mutating API group.
func OpenSessionHandler(c *gin.Context) {
	var input struct {
		DeviceID   string `json:"deviceId" binding:"required"`
		DeviceName string `json:"deviceName,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := utils.GenerateToken(input.DeviceID, input.DeviceName, sessionTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(sessionTokenTTL.Seconds()),
	})
}
