package configs

import (
	"github.com/spf13/viper"
)

type (
	// TracingExporter 追踪导出器类型.
	TracingExporter string
)

const (
	ExporterOTLPHTTP TracingExporter = "otlp-http"
	ExporterOTLPGRPC TracingExporter = "otlp-grpc"
	ExporterZipkin   TracingExporter = "zipkin"
	ExporterStdout   TracingExporter = "stdout"
)

const (
	DefaultTracingEnable      = false                  // 默认不启用追踪
	DefaultTracingExporter    = ExporterOTLPHTTP       // 默认导出器
	DefaultTracingEndpoint    = "localhost:4318"       // 默认收集端点
	DefaultTracingSampleRatio = 1.0                    // 默认采样率
	DefaultTracingServiceName = "uploadvault-services" // 默认服务名
)

type (
	// TracingConfig 分布式追踪配置.
	TracingConfig struct {
		Enable      bool            `mapstructure:"enable"`
		Exporter    TracingExporter `mapstructure:"exporter"     rule:"oneof=otlp-http otlp-grpc zipkin stdout"`
		Endpoint    string          `mapstructure:"endpoint"`
		SampleRatio float64         `mapstructure:"sample_ratio" rule:"min=0,max=1"`
		ServiceName string          `mapstructure:"service_name"`
		Insecure    bool            `mapstructure:"insecure"`
	}
)

func (t *TracingConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("tracing.enable", DefaultTracingEnable)
	v.SetDefault("tracing.exporter", DefaultTracingExporter)
	v.SetDefault("tracing.endpoint", DefaultTracingEndpoint)
	v.SetDefault("tracing.sample_ratio", DefaultTracingSampleRatio)
	v.SetDefault("tracing.service_name", DefaultTracingServiceName)
	v.SetDefault("tracing.insecure", true)
}
