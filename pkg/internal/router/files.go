package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/handle"
)

// RegisterFileRoutes 注册文件元数据与预签名 URL 路由.
//
//	POST   /files              -> Create（元数据 + 上传 URL）
//	GET    /files              -> List
//	GET    /files/:id          -> Get
//	PATCH  /files/:id          -> Update
//	DELETE /files/:id          -> Delete
//	GET    /files/:id/download -> Download（下载 URL）
func RegisterFileRoutes(g *gin.RouterGroup, h *handle.FileHandler) {
	files := g.Group("/files")
	{
		files.POST("", h.Create)
		files.GET("", h.List)
		files.GET("/:id", h.Get)
		files.PATCH("/:id", h.Update)
		files.DELETE("/:id", h.Delete)
		files.GET("/:id/download", h.Download)
	}
}
