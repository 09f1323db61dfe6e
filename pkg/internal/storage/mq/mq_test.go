package mq_test

import (
	"context"
	"testing"
	"time"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/storage/mq"
	"github.com/yeisme/uploadvault/pkg/queue"
)

// TestGoChannelRoundTrip 测试进程内队列的事件发布与订阅往返.
func TestGoChannelRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mq.New(ctx, &configs.MQConfig{Enable: true, Type: configs.GoChannel})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	ch, err := client.Subscribe(ctx, queue.TopicFileCreated)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	payload := queue.FileCreatedPayload{
		File: queue.FileRef{FileID: "f-1", OwnerID: "u-1", StorageKey: "u-1/f-1/a.txt"},
	}
	if err := queue.PublishFileCreated(client.Publisher(), payload, queue.WithProducer("uploadvault")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-ch:
		env, err := queue.ParseFileCreated(msg)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		if env.Payload.File.FileID != "f-1" {
			t.Errorf("file_id = %q", env.Payload.File.FileID)
		}

		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
}

// TestGetRegisteredMQTypes 测试 GoChannel 始终可用.
func TestGetRegisteredMQTypes(t *testing.T) {
	found := false
	for _, typ := range mq.GetRegisteredMQTypes() {
		if typ == configs.GoChannel {
			found = true
		}
	}

	if !found {
		t.Error("gochannel factory not registered")
	}
}

// TestUnsupportedType 测试未注册类型的错误路径.
func TestUnsupportedType(t *testing.T) {
	_, err := mq.New(context.Background(), &configs.MQConfig{Type: "kafka"})
	if err == nil {
		t.Fatal("expected error for unsupported mq type")
	}
}
