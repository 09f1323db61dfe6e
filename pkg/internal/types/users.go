package types

import "time"

// CreateUserRequest 创建用户请求.
type CreateUserRequest struct {
	Email    string `binding:"required,email"       json:"email"`
	Password string `binding:"required,min=8"       json:"password"`
	FullName string `json:"full_name,omitempty"`
	// IsSuperuser 仅超级用户可设置
	IsSuperuser bool `json:"is_superuser,omitempty"`
}

// UpdateUserRequest 更新用户请求. 指针字段区分"未提供"与"显式置空"，
// 为 nil 的字段保持原值.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty"        rule:"omitempty,email"`
	Password    *string `json:"password,omitempty"     rule:"omitempty,min=8"`
	FullName    *string `json:"full_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

// UserResponse 用户信息响应，不包含口令散列.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListUsersResponse 用户列表响应.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
