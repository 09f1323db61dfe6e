package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

// FileHandler 文件元数据与预签名 URL 端点.
type FileHandler struct {
	files *service.FileService
}

func NewFileHandler(files *service.FileService) *FileHandler {
	return &FileHandler{files: files}
}

func toFileResponse(f *model.File) types.FileResponse {
	return types.FileResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		Description: f.Description,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		IsPublic:    f.IsPublic,
		OwnerID:     f.OwnerID,
		StorageKey:  f.StorageKey,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// Create 创建元数据并签发上传 URL.
//
//	@Summary  请求上传
//	@Tags     files
//	@Security BearerAuth
//	@Accept   json
//	@Produce  json
//	@Param    body body types.CreateFileRequest true "文件元数据"
//	@Success  201 {object} types.FileUploadResponse
//	@Failure  503 {object} map[string]string
//	@Router   /files [post]
func (h *FileHandler) Create(c *gin.Context) {
	var req types.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	f, url, err := h.files.RequestUpload(c.Request.Context(), currentUser(c), req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, types.FileUploadResponse{
		File:      toFileResponse(f),
		UploadURL: url,
		ExpiresIn: h.files.PresignExpirySeconds(),
	})
}

// List 列出文件. 默认只返回自己的文件，?all=true 且超级用户时返回全量.
//
//	@Summary  列出文件
//	@Tags     files
//	@Security BearerAuth
//	@Router   /files [get]
func (h *FileHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	all := c.Query("all") == "true"

	files, total, err := h.files.List(c.Request.Context(), currentUser(c), limit, offset, all)
	if err != nil {
		abortWithError(c, err)

		return
	}

	resp := types.ListFilesResponse{Files: make([]types.FileResponse, 0, len(files)), Total: total}
	for i := range files {
		resp.Files = append(resp.Files, toFileResponse(&files[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Get 读取文件元数据.
//
//	@Summary  文件元数据
//	@Tags     files
//	@Security BearerAuth
//	@Router   /files/{id} [get]
func (h *FileHandler) Get(c *gin.Context) {
	f, err := h.files.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, toFileResponse(f))
}

// Update 更新文件元数据（filename/description/is_public）.
//
//	@Summary  更新文件
//	@Tags     files
//	@Security BearerAuth
//	@Router   /files/{id} [patch]
func (h *FileHandler) Update(c *gin.Context) {
	var patch types.UpdateFileRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	f, err := h.files.Update(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, toFileResponse(f))
}

// Delete 删除文件，返回删除前的快照.
//
//	@Summary  删除文件
//	@Tags     files
//	@Security BearerAuth
//	@Router   /files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	f, err := h.files.Delete(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, toFileResponse(f))
}

// Download 签发下载 URL.
//
//	@Summary  请求下载
//	@Tags     files
//	@Security BearerAuth
//	@Success  200 {object} types.FileDownloadResponse
//	@Router   /files/{id}/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	resp, err := h.files.RequestDownload(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
