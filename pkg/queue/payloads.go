package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 文件元数据领域 --------------------------

// FileRef 标识一条文件元数据记录及其对象存储位置.
type FileRef struct {
	FileID      string `json:"file_id"`
	OwnerID     string `json:"owner_id"`
	Bucket      string `json:"bucket,omitempty"`
	StorageKey  string `json:"storage_key"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

// FileCreatedPayload 元数据记录创建完成，上传 URL 已签发.
type FileCreatedPayload struct {
	File FileRef `json:"file"`
	// IsPublic 是否公开可读.
	IsPublic bool `json:"is_public,omitempty"`
}

// FileUpdatedPayload 元数据记录被更新.
type FileUpdatedPayload struct {
	File FileRef `json:"file"`
	// ChangedFields 本次变更涉及的字段名.
	ChangedFields []string `json:"changed_fields,omitempty"`
}

// FileDeletedPayload 元数据记录被删除.
type FileDeletedPayload struct {
	File FileRef `json:"file"`
	// ObjectRemoved 对象存储删除是否成功（尽力而为，失败不阻塞）.
	ObjectRemoved bool `json:"object_removed"`
}

// FileAccessedPayload 签发了下载 URL.
type FileAccessedPayload struct {
	File FileRef `json:"file"`
	// AccessorID 请求下载的用户.
	AccessorID string `json:"accessor_id,omitempty"`
}

// -------------------------- 用户目录领域 --------------------------

// UserRef 标识一个用户账号.
type UserRef struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// UserCreatedPayload 用户账号创建完成.
type UserCreatedPayload struct {
	User        UserRef `json:"user"`
	IsSuperuser bool    `json:"is_superuser,omitempty"`
}

// UserUpdatedPayload 用户账号被更新.
type UserUpdatedPayload struct {
	User          UserRef  `json:"user"`
	ChangedFields []string `json:"changed_fields,omitempty"`
}

// UserDeletedPayload 用户账号被删除.
type UserDeletedPayload struct {
	User UserRef `json:"user"`
}
