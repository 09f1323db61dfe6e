package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/handle"
)

// RegisterLoginRoute 注册登录路由.
func RegisterLoginRoute(g *gin.RouterGroup, h *handle.AuthHandler) {
	g.POST("/login", h.Login)
}
