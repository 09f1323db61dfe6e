// Package service 实现用户目录、令牌、访问策略与文件元数据的业务逻辑.
package service

import "errors"

// 业务错误哨兵. 服务层只返回这些错误（或其包装），
// HTTP 状态码映射在 handle 层统一完成.
var (
	// ErrUnauthorized 凭证缺失或无效.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden 身份有效但权限不足. 不隐藏资源存在性.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound 资源不存在.
	ErrNotFound = errors.New("not found")
	// ErrConflict 唯一性冲突，如邮箱已注册.
	ErrConflict = errors.New("conflict")
	// ErrInvalid 请求参数非法.
	ErrInvalid = errors.New("invalid request")
	// ErrStorageUnavailable 对象存储不可用，预签名或删除失败.
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
