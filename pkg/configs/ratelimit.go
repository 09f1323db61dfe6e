package configs

import (
	"github.com/spf13/viper"
)

const (
	DefaultRateLimitEnable = false // 默认不启用限流
	DefaultRateLimitRPS    = 100   // 每秒允许的请求数
	DefaultRateLimitBurst  = 200   // 突发容量
)

type (
	// RateLimitConfig 请求限流配置，基于令牌桶.
	RateLimitConfig struct {
		Enable bool    `mapstructure:"enable"`
		RPS    float64 `mapstructure:"rps"    rule:"min=0"`
		Burst  int     `mapstructure:"burst"  rule:"min=0"`
	}
)

func (r *RateLimitConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("rate_limit.enable", DefaultRateLimitEnable)
	v.SetDefault("rate_limit.rps", DefaultRateLimitRPS)
	v.SetDefault("rate_limit.burst", DefaultRateLimitBurst)
}
