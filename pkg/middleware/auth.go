package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/configs"
	ctxPkg "github.com/yeisme/uploadvault/pkg/context"
	"github.com/yeisme/uploadvault/pkg/internal/service"
)

// AuthMiddleware 解析 Bearer 令牌并将认证用户注入请求上下文.
// 配置中的 SkipPaths 前缀跳过认证（健康检查、登录、指标等）.
func AuthMiddleware(auth *service.AuthService, cfg *configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, p) {
				c.Next()

				return
			}
		}

		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})

			return
		}

		u, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

			return
		}

		c.Request = c.Request.WithContext(ctxPkg.WithCurrentUser(c.Request.Context(), u))

		c.Next()
	}
}

// bearerToken 从 Authorization 头提取 Bearer 令牌.
func bearerToken(c *gin.Context) (string, bool) {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if auth == "" {
		return "", false
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
