// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：uv.<域>.<动作>，尽量稳定且向后兼容.
// 域：file(文件元数据)、user(用户目录)
// 动作：created/updated/deleted/accessed

const (
	// 文件元数据领域.
	TopicFileCreated  = "uv.file.created"  // 元数据记录已创建（上传 URL 已签发）
	TopicFileUpdated  = "uv.file.updated"  // 元数据记录被更新
	TopicFileDeleted  = "uv.file.deleted"  // 元数据记录被删除（对象删除为尽力而为）
	TopicFileAccessed = "uv.file.accessed" // 签发了下载 URL（用于访问统计）

	// 用户目录领域.
	TopicUserCreated = "uv.user.created" // 用户账号已创建
	TopicUserUpdated = "uv.user.updated" // 用户账号被更新
	TopicUserDeleted = "uv.user.deleted" // 用户账号被删除
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 文件相关主题集合.
	FileTopics = []string{
		TopicFileCreated, TopicFileUpdated, TopicFileDeleted, TopicFileAccessed,
	}

	// 用户相关主题集合.
	UserTopics = []string{
		TopicUserCreated, TopicUserUpdated, TopicUserDeleted,
	}
)
