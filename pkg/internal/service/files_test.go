package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

func newActor(superuser bool) *model.User {
	return &model.User{
		ID:          uuid.NewString(),
		Email:       uuid.NewString() + "@example.com",
		IsActive:    true,
		IsSuperuser: superuser,
	}
}

// TestRequestUpload 测试上传编排：存储键推导与上传 URL 签发.
func TestRequestUpload(t *testing.T) {
	gw := &stubGateway{}
	files := service.NewFileService(newTestDB(t), gw, nil, 3600)
	owner := newActor(false)
	ctx := context.Background()

	f, url, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{
		Filename:    "report.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
	})
	if err != nil {
		t.Fatalf("request upload: %v", err)
	}

	wantKey := owner.ID + "/" + f.ID + "/report.pdf"
	if f.StorageKey != wantKey {
		t.Errorf("storage key = %q, want %q", f.StorageKey, wantKey)
	}

	if !strings.Contains(url, f.StorageKey) {
		t.Errorf("upload url %q does not reference storage key", url)
	}

	// 声明的内容类型必须签进上传 URL，而不是只存在元数据里
	if gw.putContentType != "application/pdf" {
		t.Errorf("presigned content type = %q, want application/pdf", gw.putContentType)
	}

	if f.OwnerID != owner.ID {
		t.Errorf("owner = %q, want %q", f.OwnerID, owner.ID)
	}

	// 未认证调用
	_, _, err = files.RequestUpload(ctx, nil, types.CreateFileRequest{Filename: "x"})
	wantErrIs(t, err, service.ErrUnauthorized)
}

// TestRequestUploadRollback 测试签名失败时回滚元数据行.
func TestRequestUploadRollback(t *testing.T) {
	gw := &stubGateway{putErr: errors.New("minio down")}
	dbClient := newTestDB(t)
	files := service.NewFileService(dbClient, gw, nil, 3600)
	owner := newActor(false)
	ctx := context.Background()

	_, _, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{Filename: "doomed.txt"})
	wantErrIs(t, err, service.ErrStorageUnavailable)

	// 行必须已被清理，软删除的残留也不允许
	var count int64
	if err := dbClient.Model(&model.File{}).Unscoped().Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	if count != 0 {
		t.Errorf("expected no file rows after rollback, got %d", count)
	}
}

// TestFileVisibility 测试读写权限的不对称：公开授予读，不授予写.
func TestFileVisibility(t *testing.T) {
	gw := &stubGateway{}
	files := service.NewFileService(newTestDB(t), gw, nil, 3600)
	owner := newActor(false)
	other := newActor(false)
	admin := newActor(true)
	ctx := context.Background()

	private, _, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{Filename: "private.txt"})
	if err != nil {
		t.Fatalf("upload private: %v", err)
	}

	public, _, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{Filename: "public.txt", IsPublic: true})
	if err != nil {
		t.Fatalf("upload public: %v", err)
	}

	// 私有文件：他人不可读，属主和超级用户可读
	_, err = files.Get(ctx, other, private.ID)
	wantErrIs(t, err, service.ErrForbidden)

	if _, err := files.Get(ctx, owner, private.ID); err != nil {
		t.Errorf("owner read private: %v", err)
	}

	if _, err := files.Get(ctx, admin, private.ID); err != nil {
		t.Errorf("admin read private: %v", err)
	}

	// 公开文件：他人可读、可下载，但不可改不可删
	if _, err := files.Get(ctx, other, public.ID); err != nil {
		t.Errorf("other read public: %v", err)
	}

	if _, err := files.RequestDownload(ctx, other, public.ID); err != nil {
		t.Errorf("other download public: %v", err)
	}

	_, err = files.Update(ctx, other, public.ID, types.UpdateFileRequest{Filename: strPtr("stolen.txt")})
	wantErrIs(t, err, service.ErrForbidden)

	_, err = files.Delete(ctx, other, public.ID)
	wantErrIs(t, err, service.ErrForbidden)

	// 不存在的文件返回 NotFound 而不是 Forbidden，存在性不被权限掩盖
	_, err = files.Get(ctx, other, "no-such-id")
	wantErrIs(t, err, service.ErrNotFound)
}

// TestFileUpdate 测试部分更新：可变字段生效，存储键保持不变.
func TestFileUpdate(t *testing.T) {
	gw := &stubGateway{}
	files := service.NewFileService(newTestDB(t), gw, nil, 3600)
	owner := newActor(false)
	ctx := context.Background()

	f, _, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{
		Filename:    "draft.md",
		Description: "first draft",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	originalKey := f.StorageKey

	got, err := files.Update(ctx, owner, f.ID, types.UpdateFileRequest{
		Filename: strPtr("final.md"),
		IsPublic: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Filename != "final.md" {
		t.Errorf("filename = %q", got.Filename)
	}

	if !got.IsPublic {
		t.Error("is_public not updated")
	}

	// 未补丁字段保持原值
	if got.Description != "first draft" {
		t.Errorf("description changed unexpectedly: %q", got.Description)
	}

	// 存储键在创建时一次性确定，重命名不重算
	if got.StorageKey != originalKey {
		t.Errorf("storage key changed: %q -> %q", originalKey, got.StorageKey)
	}

	// 空补丁是合法的 no-op
	if _, err := files.Update(ctx, owner, f.ID, types.UpdateFileRequest{}); err != nil {
		t.Errorf("empty patch: %v", err)
	}
}

// TestFileDelete 测试删除：对象删除尽力而为，元数据删除权威，返回删除前快照.
func TestFileDelete(t *testing.T) {
	gw := &stubGateway{removeErr: errors.New("object store flaky")}
	files := service.NewFileService(newTestDB(t), gw, nil, 3600)
	owner := newActor(false)
	ctx := context.Background()

	f, _, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{Filename: "trash.bin"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	// 对象删除失败不阻塞元数据删除
	snapshot, err := files.Delete(ctx, owner, f.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if snapshot.ID != f.ID || snapshot.Filename != "trash.bin" {
		t.Errorf("snapshot mismatch: %+v", snapshot)
	}

	if len(gw.removed) != 1 || gw.removed[0] != f.StorageKey {
		t.Errorf("object delete not attempted for %q: %v", f.StorageKey, gw.removed)
	}

	_, err = files.Get(ctx, owner, f.ID)
	wantErrIs(t, err, service.ErrNotFound)
}

// TestFileList 测试列表可见范围与分页.
func TestFileList(t *testing.T) {
	gw := &stubGateway{}
	files := service.NewFileService(newTestDB(t), gw, nil, 3600)
	alice := newActor(false)
	bob := newActor(false)
	admin := newActor(true)
	ctx := context.Background()

	for _, name := range []string{"a1.txt", "a2.txt"} {
		if _, _, err := files.RequestUpload(ctx, alice, types.CreateFileRequest{Filename: name}); err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
	}

	// bob 的公开文件不应混入 alice 的列表
	if _, _, err := files.RequestUpload(ctx, bob, types.CreateFileRequest{Filename: "b1.txt", IsPublic: true}); err != nil {
		t.Fatalf("upload b1: %v", err)
	}

	list, total, err := files.List(ctx, alice, 10, 0, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if total != 2 || len(list) != 2 {
		t.Fatalf("expected alice to see 2 files, got total=%d len=%d", total, len(list))
	}

	for _, f := range list {
		if f.OwnerID != alice.ID {
			t.Errorf("foreign file %q leaked into list", f.Filename)
		}
	}

	// 普通用户的 all=true 静默降级为自己的文件
	_, total, err = files.List(ctx, alice, 10, 0, true)
	if err != nil {
		t.Fatalf("list all as normal user: %v", err)
	}

	if total != 2 {
		t.Errorf("all=true as normal user: total=%d, want 2", total)
	}

	// 超级用户 all=true 全量
	_, total, err = files.List(ctx, admin, 10, 0, true)
	if err != nil {
		t.Fatalf("list all as admin: %v", err)
	}

	if total != 3 {
		t.Errorf("all=true as admin: total=%d, want 3", total)
	}

	// 分页参数校验
	_, _, err = files.List(ctx, alice, -5, 0, false)
	wantErrIs(t, err, service.ErrInvalid)

	_, _, err = files.List(ctx, alice, 10, -1, false)
	wantErrIs(t, err, service.ErrInvalid)
}

// TestFileListLimitClamp 测试超过上限的 limit 被收敛到 100 而不是拒绝.
func TestFileListLimitClamp(t *testing.T) {
	gw := &stubGateway{}
	files := service.NewFileService(newTestDB(t), gw, nil, 3600)
	owner := newActor(false)
	ctx := context.Background()

	const seeded = service.MaxPageLimit + 5
	for i := 0; i < seeded; i++ {
		req := types.CreateFileRequest{Filename: fmt.Sprintf("f%03d.txt", i)}
		if _, _, err := files.RequestUpload(ctx, owner, req); err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}

	list, total, err := files.List(ctx, owner, 500, 0, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if total != seeded {
		t.Errorf("total = %d, want %d", total, seeded)
	}

	if len(list) != service.MaxPageLimit {
		t.Errorf("page size = %d, want %d", len(list), service.MaxPageLimit)
	}

	// 收敛不影响 offset，剩余的行可以翻到
	rest, _, err := files.List(ctx, owner, 500, service.MaxPageLimit, false)
	if err != nil {
		t.Fatalf("list rest: %v", err)
	}

	if len(rest) != seeded-service.MaxPageLimit {
		t.Errorf("rest page size = %d, want %d", len(rest), seeded-service.MaxPageLimit)
	}

	// 排序必须稳定：同秒创建的行跨页翻阅时不重复也不遗漏
	seen := make(map[string]bool, seeded)
	for _, f := range append(list, rest...) {
		if seen[f.ID] {
			t.Errorf("file %s appeared on both pages", f.ID)
		}

		seen[f.ID] = true
	}

	if len(seen) != seeded {
		t.Errorf("paged through %d distinct files, want %d", len(seen), seeded)
	}
}

// TestRequestDownload 测试下载 URL 签发及存储故障处理.
func TestRequestDownload(t *testing.T) {
	gw := &stubGateway{}
	dbClient := newTestDB(t)
	files := service.NewFileService(dbClient, gw, nil, 900)
	owner := newActor(false)
	ctx := context.Background()

	f, _, err := files.RequestUpload(ctx, owner, types.CreateFileRequest{Filename: "movie.mp4", ContentType: "video/mp4"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	resp, err := files.RequestDownload(ctx, owner, f.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	if resp.FileID != f.ID || resp.Filename != "movie.mp4" || resp.ContentType != "video/mp4" {
		t.Errorf("response mismatch: %+v", resp)
	}

	if resp.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", resp.ExpiresIn)
	}

	if !strings.Contains(resp.DownloadURL, f.StorageKey) {
		t.Errorf("download url %q does not reference storage key", resp.DownloadURL)
	}

	// 签名故障映射为存储不可用，元数据保持不变
	gw.getErr = errors.New("minio down")

	_, err = files.RequestDownload(ctx, owner, f.ID)
	wantErrIs(t, err, service.ErrStorageUnavailable)

	if _, err := files.Get(ctx, owner, f.ID); err != nil {
		t.Errorf("metadata should survive presign failure: %v", err)
	}
}
