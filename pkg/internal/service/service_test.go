package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/storage/db"
)

// newTestDB 创建内存 SQLite 数据库并迁移模型，每个测试独立一份.
func newTestDB(t *testing.T) *db.Client {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库跟随连接存在，收敛到单连接避免各连接各见一份空库
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&model.User{}, &model.File{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &db.Client{DB: gdb}
}

// newAdmin 通过启动引导创建初始超级用户并返回.
func newAdmin(t *testing.T, users *service.UserService) *model.User {
	t.Helper()

	cfg := &configs.AuthConfig{
		FirstSuperuser:         "admin@example.com",
		FirstSuperuserPassword: "admin-password",
	}
	if err := users.EnsureFirstSuperuser(context.Background(), cfg); err != nil {
		t.Fatalf("ensure first superuser: %v", err)
	}

	admin, err := users.GetByEmail(context.Background(), cfg.FirstSuperuser)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}

	return admin
}

// stubGateway 桩对象存储，可注入故障并记录收到的参数.
type stubGateway struct {
	putErr         error
	getErr         error
	removeErr      error
	removed        []string
	putContentType string
}

func (g *stubGateway) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	g.putContentType = contentType

	if g.putErr != nil {
		return "", g.putErr
	}

	return "https://minio.local/put/" + key, nil
}

func (g *stubGateway) PresignGet(ctx context.Context, key, filename string) (string, error) {
	if g.getErr != nil {
		return "", g.getErr
	}

	return "https://minio.local/get/" + key, nil
}

func (g *stubGateway) Remove(ctx context.Context, key string) error {
	g.removed = append(g.removed, key)

	return g.removeErr
}

func (g *stubGateway) Bucket() string { return "uploadvault" }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func wantErrIs(t *testing.T, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}
