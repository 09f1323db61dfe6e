package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

// UserHandler 用户目录端点.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// toUserResponse 将模型转换为响应，口令散列永远不外泄.
func toUserResponse(u *model.User) types.UserResponse {
	return types.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// pageParams 解析 limit/offset 查询参数，解析失败交给服务层拒绝.
func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	return limit, offset
}

// Create 创建用户（仅超级用户）.
//
//	@Summary  创建用户
//	@Tags     users
//	@Security BearerAuth
//	@Router   /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	u, err := h.users.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, toUserResponse(u))
}

// List 列出用户（仅超级用户）.
//
//	@Summary  列出用户
//	@Tags     users
//	@Security BearerAuth
//	@Router   /users [get]
func (h *UserHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	users, total, err := h.users.List(c.Request.Context(), currentUser(c), limit, offset)
	if err != nil {
		abortWithError(c, err)

		return
	}

	resp := types.ListUsersResponse{Users: make([]types.UserResponse, 0, len(users)), Total: total}
	for i := range users {
		resp.Users = append(resp.Users, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Me 返回当前认证用户.
//
//	@Summary  当前用户
//	@Tags     users
//	@Security BearerAuth
//	@Router   /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// Get 按 ID 查询用户. 普通用户只能查自己.
//
//	@Summary  查询用户
//	@Tags     users
//	@Security BearerAuth
//	@Router   /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	actor := currentUser(c)
	id := c.Param("id")

	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	if !actor.IsSuperuser && actor.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})

		return
	}

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// Update 更新用户. 普通用户只能改自己，且不能改权限字段.
//
//	@Summary  更新用户
//	@Tags     users
//	@Security BearerAuth
//	@Router   /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var patch types.UpdateUserRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	u, err := h.users.Update(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// Delete 删除用户（仅超级用户，不能删除自己）.
//
//	@Summary  删除用户
//	@Tags     users
//	@Security BearerAuth
//	@Router   /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
