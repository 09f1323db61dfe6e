package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

// AuthHandler 登录端点.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login 校验邮箱口令并返回访问令牌.
//
//	@Summary  用户登录
//	@Tags     auth
//	@Accept   json
//	@Produce  json
//	@Param    body body types.LoginRequest true "登录请求"
//	@Success  200 {object} types.TokenResponse
//	@Failure  401 {object} map[string]string
//	@Router   /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
