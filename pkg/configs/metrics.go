package configs

import (
	"github.com/spf13/viper"
)

const (
	DefaultMetricsEnable      = true       // 是否启用指标采集
	DefaultMetricsPath        = "/metrics" // 指标暴露路径
	DefaultMetricsEnableGorm  = true       // 是否启用 GORM 指标插件
	DefaultMetricsEnablePprof = false      // 是否启用 pprof
)

type (
	// MetricsConfig 指标采集配置.
	MetricsConfig struct {
		Enable      bool   `mapstructure:"enable"`
		Path        string `mapstructure:"path"`
		EnableGorm  bool   `mapstructure:"enable_gorm"`
		EnablePprof bool   `mapstructure:"enable_pprof"`
	}
)

func (m *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enable", DefaultMetricsEnable)
	v.SetDefault("metrics.path", DefaultMetricsPath)
	v.SetDefault("metrics.enable_gorm", DefaultMetricsEnableGorm)
	v.SetDefault("metrics.enable_pprof", DefaultMetricsEnablePprof)
}
