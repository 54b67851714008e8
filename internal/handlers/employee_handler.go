package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"smart-employee-api/internal/middleware"
	"smart-employee-api/internal/models"
)

// Generator hands out freshly fabricated records.
type Generator interface {
	Take(n int) []models.Employee
}

type EmployeeHandler struct {
	gen          Generator
	defaultCount int
	maxCount     int
	log          *logrus.Logger
}

// NewEmployeeHandler builds the handler. maxCount <= 0 leaves count unbounded.
func NewEmployeeHandler(gen Generator, defaultCount, maxCount int, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		gen:          gen,
		defaultCount: defaultCount,
		maxCount:     maxCount,
		log:          logger,
	}
}

// GET /employees?count=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	count := h.defaultCount
	if raw, ok := c.GetQuery("count"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			middleware.Logger(c, h.log).WithField("count", raw).Warn("rejected non-integer count")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count", "details": "count must be an integer"})
			return
		}
		count = n
	}
	if count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count cannot be negative"})
		return
	}
	if h.maxCount > 0 && count > h.maxCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count exceeds maximum", "max": h.maxCount})
		return
	}

	c.JSON(http.StatusOK, h.gen.Take(count))
}
