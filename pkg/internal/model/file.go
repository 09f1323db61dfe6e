package model

import (
	"time"

	"gorm.io/gorm"
)

// File 文件元数据模型. 本服务只保存元数据，文件内容经预签名 URL 直达对象存储.
type File struct {
	// ID UUID 字符串，创建时生成
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Filename string `gorm:"size:512;index"     json:"filename"`
	// Description 可为空
	Description string `gorm:"type:text" json:"description"`
	ContentType string `gorm:"size:255"  json:"content_type"`
	SizeBytes   int64  `gorm:""          json:"size_bytes"`
	// IsPublic 公开文件任何已认证用户可读
	IsPublic bool `gorm:"default:false;index" json:"is_public"`
	// OwnerID 仅保存属主引用，属主的文件列表由查询得出
	OwnerID string `gorm:"size:36;index" json:"owner_id"`
	// StorageKey 对象存储键，格式 {owner_id}/{file_id}/{filename}，创建后不可变.
	// 之后更新 Filename 只改展示名，不迁移对象.
	StorageKey string `gorm:"size:1024;uniqueIndex" json:"storage_key"`
	// 软删除与审计
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
