package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultTokenTTLMinutes 默认访问令牌有效期：8 天.
	DefaultTokenTTLMinutes = 60 * 24 * 8
	// DefaultTokenSecret 开发环境默认密钥，生产部署必须覆盖.
	DefaultTokenSecret = "supersecretkey"
)

// AuthConfig 认证与令牌配置.
type AuthConfig struct {
	// TokenSecret HS256 对称签名密钥.
	TokenSecret string `mapstructure:"token_secret" rule:"required"`
	// TokenTTLMinutes 访问令牌有效期（分钟）.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes" rule:"min=1"`
	// SkipPaths 跳过认证的路径前缀（如 /metrics、/api/v1/health）.
	SkipPaths []string `mapstructure:"skip_paths"`
	// FirstSuperuser 启动时自动创建的初始超级用户邮箱，为空则不创建.
	FirstSuperuser string `mapstructure:"first_superuser"`
	// FirstSuperuserPassword 初始超级用户密码.
	FirstSuperuserPassword string `mapstructure:"first_superuser_password"`
}

// GetTokenTTL 返回令牌有效期作为 time.Duration.
func (c *AuthConfig) GetTokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.token_secret", DefaultTokenSecret)
	v.SetDefault("auth.token_ttl_minutes", DefaultTokenTTLMinutes)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/api/v1/login",
		"/swagger",
	})
	v.SetDefault("auth.first_superuser", "")
	v.SetDefault("auth.first_superuser_password", "")
}
