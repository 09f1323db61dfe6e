package types

import "time"

// CreateFileRequest 创建文件元数据并签发上传 URL 的请求.
type CreateFileRequest struct {
	Filename    string `binding:"required,max=512" json:"filename"`
	Description string `json:"description,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"  rule:"min=0"`
	IsPublic    bool   `json:"is_public,omitempty"`
}

// UpdateFileRequest 更新文件元数据请求. 指针字段区分"未提供"与"显式置空"，
// 为 nil 的字段保持原值. StorageKey、ContentType、SizeBytes 与属主创建后不可更新.
type UpdateFileRequest struct {
	Filename    *string `json:"filename,omitempty"    rule:"omitempty,max=512"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// FileResponse 文件元数据响应.
type FileResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Description string    `json:"description,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	IsPublic    bool      `json:"is_public"`
	OwnerID     string    `json:"owner_id"`
	StorageKey  string    `json:"storage_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FileUploadResponse 创建文件后返回元数据与预签名上传 URL.
type FileUploadResponse struct {
	File FileResponse `json:"file"`
	// UploadURL 预签名 PUT URL，客户端直接向对象存储上传
	UploadURL string `json:"upload_url"`
	ExpiresIn int    `json:"expires_in"` // 秒
}

// FileDownloadResponse 签发的预签名下载 URL.
type FileDownloadResponse struct {
	FileID      string `json:"file_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int    `json:"expires_in"` // 秒
}

// ListFilesResponse 文件列表响应.
type ListFilesResponse struct {
	Files []FileResponse `json:"files"`
	Total int64          `json:"total"`
}
