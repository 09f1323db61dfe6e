package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultBreakerEnable 默认不启用熔断，失败直接向上返回.
	DefaultBreakerEnable          = false
	DefaultBreakerMaxRequests     = 5  // 半开状态下允许的探测请求数
	DefaultBreakerIntervalSec     = 60 // 闭合状态下计数窗口（秒）
	DefaultBreakerTimeoutSec      = 30 // 断开后进入半开的等待时间（秒）
	DefaultBreakerFailureRatio    = 0.6
	DefaultBreakerMinimumRequests = 10
)

type (
	// CircuitBreakerConfig 熔断器配置.
	CircuitBreakerConfig struct {
		Enable          bool    `mapstructure:"enable"`
		MaxRequests     uint32  `mapstructure:"max_requests"     rule:"min=1"`
		IntervalSec     int     `mapstructure:"interval_sec"     rule:"min=1"`
		TimeoutSec      int     `mapstructure:"timeout_sec"      rule:"min=1"`
		FailureRatio    float64 `mapstructure:"failure_ratio"    rule:"min=0,max=1"`
		MinimumRequests uint32  `mapstructure:"minimum_requests" rule:"min=1"`
	}
)

// GetInterval 返回计数窗口作为 time.Duration.
func (c *CircuitBreakerConfig) GetInterval() time.Duration {
	return time.Duration(c.IntervalSec) * time.Second
}

// GetTimeout 返回半开等待时间作为 time.Duration.
func (c *CircuitBreakerConfig) GetTimeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c *CircuitBreakerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("circuit_breaker.enable", DefaultBreakerEnable)
	v.SetDefault("circuit_breaker.max_requests", DefaultBreakerMaxRequests)
	v.SetDefault("circuit_breaker.interval_sec", DefaultBreakerIntervalSec)
	v.SetDefault("circuit_breaker.timeout_sec", DefaultBreakerTimeoutSec)
	v.SetDefault("circuit_breaker.failure_ratio", DefaultBreakerFailureRatio)
	v.SetDefault("circuit_breaker.minimum_requests", DefaultBreakerMinimumRequests)
}
