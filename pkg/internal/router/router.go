// Package router 管理路由配置，将路径和处理器绑定到 gin 引擎.
// 处理器的实现由 pkg/internal/handle 提供并注入进来.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/handle"
)

// Handlers 聚合应用层注入的全部处理器.
type Handlers struct {
	Auth   *handle.AuthHandler
	Users  *handle.UserHandler
	Files  *handle.FileHandler
	Health *handle.HealthHandler
}

// Register 将全部 API 路由绑定到 gin 引擎. API 前缀来自配置（默认 /api/v1）.
func Register(engine *gin.Engine, cfg *configs.AppConfig, h Handlers) {
	api := engine.Group(cfg.Server.APIPrefix)

	RegisterLoginRoute(api, h.Auth)
	RegisterUserRoutes(api, h.Users)
	RegisterFileRoutes(api, h.Files)
	RegisterHealthCheckRoute(api, h.Health)
	RegisterSwaggerRoute(engine, cfg)
}
