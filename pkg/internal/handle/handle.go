// Package handle 提供 HTTP 请求处理器的实现.
// 处理器只做三件事：绑定请求、调用服务、映射错误到状态码.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/uploadvault/pkg/context"
	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/service"
)

// currentUser 从请求上下文取出认证中间件注入的用户.
func currentUser(c *gin.Context) *model.User {
	return ctxPkg.GetCurrentUser(c.Request.Context())
}

// abortWithError 统一的业务错误到 HTTP 状态码映射.
// 服务层只返回哨兵错误（或其包装），状态码在这里一次性决定.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
