package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型.
type User struct {
	// ID UUID 字符串，创建时生成，之后不可变
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Email 登录标识，全局唯一
	Email          string `gorm:"size:255;uniqueIndex" json:"email"`
	FullName       string `gorm:"size:255"             json:"full_name"`
	HashedPassword string `gorm:"size:128"             json:"-"`
	IsActive       bool   `gorm:"default:true"         json:"is_active"`
	IsSuperuser    bool   `gorm:"default:false"        json:"is_superuser"`
	// 软删除与审计
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
