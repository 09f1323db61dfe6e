package service

import (
	"github.com/yeisme/uploadvault/pkg/internal/model"
)

// 访问策略为纯函数，输入当前用户与目标资源，输出布尔判定.
// 策略不触发任何 IO，规则变化只改这里.

// CanRead 判断用户能否读取文件元数据与下载内容.
// 属主、超级用户可读；公开文件任何已认证用户可读.
func CanRead(u *model.User, f *model.File) bool {
	if u == nil || f == nil {
		return false
	}

	if u.IsSuperuser || f.OwnerID == u.ID {
		return true
	}

	return f.IsPublic
}

// CanModify 判断用户能否修改或删除文件.
// 仅属主与超级用户可改，公开性不授予写权限.
func CanModify(u *model.User, f *model.File) bool {
	if u == nil || f == nil {
		return false
	}

	return u.IsSuperuser || f.OwnerID == u.ID
}

// CanManageUsers 判断用户能否管理其他用户账号.
func CanManageUsers(u *model.User) bool {
	return u != nil && u.IsSuperuser
}
