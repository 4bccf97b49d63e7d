package router

import (
	"gateway/internal/handler"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(
	healthHandler *handler.HealthHandler,
) *HealthRouter {
	return &HealthRouter{
		healthHandler: healthHandler,
	}
}

func (healthRouter *HealthRouter) RegisterRoutes(r *gin.Engine) {
	r.GET("/version", healthRouter.healthHandler.Version)
	g := r.Group("/health")
	{
		g.GET("", healthRouter.healthHandler.Health)
		g.GET("/liveness", healthRouter.healthHandler.Liveness)
		g.GET("/readiness", healthRouter.healthHandler.Readiness)
	}
}
