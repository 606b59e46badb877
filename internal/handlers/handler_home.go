package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the root and health endpoints.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
	r.GET("/health", health)
}

func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "fx-ledger", "status": "running"})
}

func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
