package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"smart-employee-api/internal/config"
	"smart-employee-api/internal/handlers"
	"smart-employee-api/internal/metrics"
	"smart-employee-api/internal/middleware"
)

// New builds the engine with the middleware stack from cfg and registers routes.
func New(cfg config.AppConfig, gen handlers.Generator, logger *logrus.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	if cfg.RateLimit.Enabled {
		limit, err := middleware.RateLimit(cfg.RateLimit.Rate)
		if err != nil {
			return nil, err
		}
		r.Use(limit)
	}
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	Setup(r, handlers.NewEmployeeHandler(gen, cfg.DefaultCount, cfg.MaxCount, logger))
	return r, nil
}

func Setup(r *gin.Engine, eh *handlers.EmployeeHandler) {
	r.GET("/", handlers.Home)

	// health
	r.GET("/health", handlers.Health)

	r.GET("/employees", eh.ListEmployees)
}
