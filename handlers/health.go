package handlers

import (
	"net/http"

	"aspcare/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last snapshot taken by utils.StartHealthMonitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "message": "Hi, I'm aspcare"})
}
