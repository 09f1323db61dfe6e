package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishFileCreated 发布 uv.file.created 事件。
// 元数据记录写入数据库且上传 URL 签发成功后调用，通知下游消费（审计、统计等）。
func PublishFileCreated(pub message.Publisher, payload FileCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileCreated, msg)
}

// ParseFileCreated 将 Watermill 消息解析为强类型 Envelope（FileCreatedPayload）。
func ParseFileCreated(msg *message.Message) (Message[FileCreatedPayload], error) {
	return ParseWatermillMessage[FileCreatedPayload](msg)
}

// PublishFileUpdated 发布 uv.file.updated 事件。
func PublishFileUpdated(pub message.Publisher, payload FileUpdatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileUpdated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileUpdated, msg)
}

// PublishFileDeleted 发布 uv.file.deleted 事件。
func PublishFileDeleted(pub message.Publisher, payload FileDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileDeleted, msg)
}

// PublishFileAccessed 发布 uv.file.accessed 事件。
func PublishFileAccessed(pub message.Publisher, payload FileAccessedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileAccessed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileAccessed, msg)
}

// PublishUserCreated 发布 uv.user.created 事件。
func PublishUserCreated(pub message.Publisher, payload UserCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicUserCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicUserCreated, msg)
}
