// Package mq 提供进程内 GoChannel 消息队列实现.
// 此文件包含 GoChannel 工厂函数，适合开发环境与测试，不依赖外部服务.
package mq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/yeisme/uploadvault/pkg/configs"
)

// init 注册 GoChannel 工厂.
func init() {
	RegisterFactory(configs.GoChannel, goChannelFactory)
}

// goChannelFactory 创建进程内 Publisher & Subscriber，二者共享同一实例.
func goChannelFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	ps := gochannel.NewGoChannel(gochannel.Config{}, logger)

	return ps, ps, nil
}
