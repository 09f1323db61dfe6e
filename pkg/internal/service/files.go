package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ctxPkg "github.com/yeisme/uploadvault/pkg/context"
	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/storage/db"
	"github.com/yeisme/uploadvault/pkg/internal/storage/mq"
	"github.com/yeisme/uploadvault/pkg/internal/types"
	nlog "github.com/yeisme/uploadvault/pkg/log"
	"github.com/yeisme/uploadvault/pkg/metrics"
	"github.com/yeisme/uploadvault/pkg/queue"
)

// ObjectGateway 抽象对象存储操作，s3.Client 是生产实现.
// 测试可注入桩实现来模拟存储故障.
type ObjectGateway interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key, filename string) (string, error)
	Remove(ctx context.Context, key string) error
	Bucket() string
}

// FileService 文件元数据注册表与上传/下载编排.
// 服务本身不经手文件内容，只签发预签名 URL 并维护元数据行.
type FileService struct {
	dbClient      *db.Client
	gateway       ObjectGateway
	mqClient      *mq.Client
	presignExpiry int // 秒，回显给客户端
}

// NewFileService 构造 FileService. mqClient 可以为 nil，此时不发布事件.
func NewFileService(dbClient *db.Client, gateway ObjectGateway, mqClient *mq.Client, presignExpirySeconds int) *FileService {
	return &FileService{
		dbClient:      dbClient,
		gateway:       gateway,
		mqClient:      mqClient,
		presignExpiry: presignExpirySeconds,
	}
}

// StorageKeyFor 推导对象存储键，创建时一次性确定，之后不再重算.
// 键格式 {owner_id}/{file_id}/{filename}，三段式保证全局唯一且可按属主巡检.
func StorageKeyFor(ownerID, fileID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", ownerID, fileID, filename)
}

// RequestUpload 创建元数据行并签发上传 URL.
// 先写行再签名；签名失败则回滚刚创建的行，保证不残留无上传能力的元数据.
func (s *FileService) RequestUpload(ctx context.Context, owner *model.User, req types.CreateFileRequest) (*model.File, string, error) {
	if owner == nil {
		return nil, "", fmt.Errorf("request upload: %w", ErrUnauthorized)
	}

	f := model.File{
		ID:          uuid.NewString(),
		Filename:    req.Filename,
		Description: req.Description,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		IsPublic:    req.IsPublic,
		OwnerID:     owner.ID,
	}
	f.StorageKey = StorageKeyFor(owner.ID, f.ID, f.Filename)

	if err := s.dbClient.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, "", fmt.Errorf("create file record: %w", err)
	}

	url, err := s.gateway.PresignPut(ctx, f.StorageKey, f.ContentType)
	if err != nil {
		// 补偿：行已写入但永远不会有对应上传能力，删掉
		if delErr := s.dbClient.WithContext(ctx).Unscoped().Delete(&f).Error; delErr != nil {
			nlog.Logger().Error().Err(delErr).Str("file_id", f.ID).Msg("rollback file record failed")
		}

		metrics.StorageErrorCounter.WithLabelValues("presign_put").Inc()
		nlog.Logger().Error().Err(err).Str("storage_key", f.StorageKey).Msg("presign upload failed")

		return nil, "", fmt.Errorf("presign upload: %w", ErrStorageUnavailable)
	}

	metrics.PresignCounter.WithLabelValues("upload").Inc()
	s.publishFileCreated(ctx, &f)

	return &f, url, nil
}

// Get 读取元数据. 先判存在，再判权限：缺失返回 NotFound，不以 Forbidden 掩盖.
func (s *FileService) Get(ctx context.Context, actor *model.User, id string) (*model.File, error) {
	f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanRead(actor, f) {
		return nil, fmt.Errorf("file %s: %w", id, ErrForbidden)
	}

	return f, nil
}

// List 列出文件. 普通用户只见自己的文件，公开文件不混入他人列表；
// all 为 true 且调用者是超级用户时返回全量.
func (s *FileService) List(ctx context.Context, actor *model.User, limit, offset int, all bool) ([]model.File, int64, error) {
	if actor == nil {
		return nil, 0, fmt.Errorf("list files: %w", ErrUnauthorized)
	}

	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, 0, err
	}

	q := s.dbClient.WithContext(ctx).Model(&model.File{})
	if !(all && actor.IsSuperuser) {
		q = q.Where("owner_id = ?", actor.ID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var files []model.File
	// created_at 同秒插入会并列，补 id 保证顺序稳定
	if err := q.Order("created_at, id").Limit(limit).Offset(offset).Find(&files).Error; err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// Update 应用部分更新. 仅 filename/description/is_public 可变，
// storage_key 保持创建时的值. 并发更新为后写覆盖.
func (s *FileService) Update(ctx context.Context, actor *model.User, id string, patch types.UpdateFileRequest) (*model.File, error) {
	f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanModify(actor, f) {
		return nil, fmt.Errorf("file %s: %w", id, ErrForbidden)
	}

	changed := make([]string, 0, 3)

	if patch.Filename != nil {
		f.Filename = *patch.Filename
		changed = append(changed, "filename")
	}

	if patch.Description != nil {
		f.Description = *patch.Description
		changed = append(changed, "description")
	}

	if patch.IsPublic != nil {
		f.IsPublic = *patch.IsPublic
		changed = append(changed, "is_public")
	}

	if len(changed) == 0 {
		return f, nil
	}

	if err := s.dbClient.WithContext(ctx).Save(f).Error; err != nil {
		return nil, fmt.Errorf("update file: %w", err)
	}

	s.publishFileUpdated(ctx, f, changed)

	return f, nil
}

// Delete 删除文件. 对象删除为尽力而为，失败只记录不阻塞；元数据删除是权威动作.
// 返回删除前的快照.
func (s *FileService) Delete(ctx context.Context, actor *model.User, id string) (*model.File, error) {
	f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanModify(actor, f) {
		return nil, fmt.Errorf("file %s: %w", id, ErrForbidden)
	}

	objectRemoved := true
	if err := s.gateway.Remove(ctx, f.StorageKey); err != nil {
		objectRemoved = false

		metrics.StorageErrorCounter.WithLabelValues("remove").Inc()
		nlog.Logger().Warn().Err(err).Str("storage_key", f.StorageKey).Msg("best-effort object delete failed")
	}

	if err := s.dbClient.WithContext(ctx).Delete(f).Error; err != nil {
		return nil, fmt.Errorf("delete file: %w", err)
	}

	s.publishFileDeleted(ctx, f, objectRemoved)

	return f, nil
}

// RequestDownload 为文件签发下载 URL. 权限规则与读元数据一致.
func (s *FileService) RequestDownload(ctx context.Context, actor *model.User, id string) (*types.FileDownloadResponse, error) {
	f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanRead(actor, f) {
		return nil, fmt.Errorf("file %s: %w", id, ErrForbidden)
	}

	url, err := s.gateway.PresignGet(ctx, f.StorageKey, f.Filename)
	if err != nil {
		metrics.StorageErrorCounter.WithLabelValues("presign_get").Inc()
		nlog.Logger().Error().Err(err).Str("storage_key", f.StorageKey).Msg("presign download failed")

		return nil, fmt.Errorf("presign download: %w", ErrStorageUnavailable)
	}

	metrics.PresignCounter.WithLabelValues("download").Inc()
	s.publishFileAccessed(ctx, f, actor)

	return &types.FileDownloadResponse{
		FileID:      f.ID,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		DownloadURL: url,
		ExpiresIn:   s.presignExpiry,
	}, nil
}

// PresignExpirySeconds 返回签名有效期（秒），用于响应回显.
func (s *FileService) PresignExpirySeconds() int {
	return s.presignExpiry
}

func (s *FileService) load(ctx context.Context, id string) (*model.File, error) {
	var f model.File

	err := s.dbClient.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file %s: %w", id, ErrNotFound)
		}

		return nil, err
	}

	return &f, nil
}

func (s *FileService) fileRef(f *model.File) queue.FileRef {
	return queue.FileRef{
		FileID:      f.ID,
		OwnerID:     f.OwnerID,
		Bucket:      s.gateway.Bucket(),
		StorageKey:  f.StorageKey,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
	}
}

func (s *FileService) publishFileCreated(ctx context.Context, f *model.File) {
	if s.mqClient == nil {
		return
	}

	payload := queue.FileCreatedPayload{File: s.fileRef(f), IsPublic: f.IsPublic}
	if err := queue.PublishFileCreated(s.mqClient.Publisher(), payload, s.eventOpts(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Msg("publish file created event failed")
	}
}

func (s *FileService) publishFileUpdated(ctx context.Context, f *model.File, changed []string) {
	if s.mqClient == nil {
		return
	}

	payload := queue.FileUpdatedPayload{File: s.fileRef(f), ChangedFields: changed}
	if err := queue.PublishFileUpdated(s.mqClient.Publisher(), payload, s.eventOpts(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Msg("publish file updated event failed")
	}
}

func (s *FileService) publishFileDeleted(ctx context.Context, f *model.File, objectRemoved bool) {
	if s.mqClient == nil {
		return
	}

	payload := queue.FileDeletedPayload{File: s.fileRef(f), ObjectRemoved: objectRemoved}
	if err := queue.PublishFileDeleted(s.mqClient.Publisher(), payload, s.eventOpts(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Msg("publish file deleted event failed")
	}
}

func (s *FileService) publishFileAccessed(ctx context.Context, f *model.File, actor *model.User) {
	if s.mqClient == nil {
		return
	}

	payload := queue.FileAccessedPayload{File: s.fileRef(f)}
	if actor != nil {
		payload.AccessorID = actor.ID
	}

	if err := queue.PublishFileAccessed(s.mqClient.Publisher(), payload, s.eventOpts(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Msg("publish file accessed event failed")
	}
}

func (s *FileService) eventOpts(ctx context.Context) []func(*queue.EventHeader) {
	opts := []func(*queue.EventHeader){queue.WithProducer("uploadvault")}
	if reqID := ctxPkg.GetRequestID(ctx); reqID != "" {
		opts = append(opts, queue.WithTraceID(reqID))
	}

	return opts
}
