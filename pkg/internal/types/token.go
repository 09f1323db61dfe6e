// Package types 定义 API 请求/响应结构体.
package types

// LoginRequest 登录请求（邮箱 + 密码）.
type LoginRequest struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password"`
}

// TokenResponse 登录成功返回的访问令牌.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // 固定为 bearer
	ExpiresIn   int    `json:"expires_in"` // 秒
}
