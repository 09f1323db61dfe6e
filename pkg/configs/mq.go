package configs

import (
	"github.com/spf13/viper"
)

type (
	// MQType 消息队列类型.
	MQType string
)

const (
	// NATS 消息队列.
	NATS MQType = "nats"
	// GoChannel 进程内内存队列，适合开发与测试.
	GoChannel MQType = "gochannel"
)

const (
	DefaultMQType     = GoChannel               // 默认消息队列类型
	DefaultNATSURL    = "nats://localhost:4222" // 默认NATS地址
	DefaultMQEnable   = true                    // 是否启用事件发布
	DefaultNATSSubFmt = "uv.>"                  // 订阅主题通配
)

type (
	// MQConfig 消息队列配置.
	MQConfig struct {
		Enable bool   `mapstructure:"enable"`
		Type   MQType `mapstructure:"type"   rule:"oneof=nats gochannel"`
		URL    string `mapstructure:"url"`
		// ClientID NATS 客户端标识，为空则自动生成.
		ClientID string `mapstructure:"client_id"`
	}
)

func (m *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.enable", DefaultMQEnable)
	v.SetDefault("mq.type", DefaultMQType)
	v.SetDefault("mq.url", DefaultNATSURL)
	v.SetDefault("mq.client_id", "")
}
