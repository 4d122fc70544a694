package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /health
func (h *Handler) Health(c *gin.Context) {
	redisStatus := "up"
	if h.Redis == nil || h.Redis.Ping(c.Request.Context()).Err() != nil {
		redisStatus = "down"
	}

	code := http.StatusOK
	if redisStatus == "down" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": "ok",
		"redis":  redisStatus,
	})
}
