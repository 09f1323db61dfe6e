package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/handle"
)

// RegisterHealthCheckRoute 注册健康检查路由.
func RegisterHealthCheckRoute(g *gin.RouterGroup, h *handle.HealthHandler) {
	healthRoutes := g.Group("/health")
	{
		healthRoutes.GET("", h.Live)
		healthRoutes.GET("/ready", h.Ready)
		healthRoutes.GET("/db", h.HealthDB)
		healthRoutes.GET("/s3", h.HealthS3)
		healthRoutes.GET("/mq", h.HealthMQ)
	}
}
