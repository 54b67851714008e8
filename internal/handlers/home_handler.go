package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const StatusMessage = "DRC Systems Smart Employee API is Running."

// GET /
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": StatusMessage})
}

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
