package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/handle"
)

// RegisterUserRoutes 注册用户目录路由.
//
//	POST   /users       -> Create（仅超级用户）
//	GET    /users       -> List（仅超级用户）
//	GET    /users/me    -> Me
//	GET    /users/:id   -> Get
//	PATCH  /users/:id   -> Update
//	DELETE /users/:id   -> Delete（仅超级用户）
func RegisterUserRoutes(g *gin.RouterGroup, h *handle.UserHandler) {
	users := g.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/me", h.Me)
		users.GET("/:id", h.Get)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
