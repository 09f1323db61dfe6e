package configs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yeisme/uploadvault/pkg/configs"
)

// TestInitConfigDefaults 测试无配置文件时的默认值.
func TestInitConfigDefaults(t *testing.T) {
	cfg, err := configs.InitConfig(t.TempDir())
	if err != nil {
		t.Fatalf("init config: %v", err)
	}

	if cfg.Server.APIPrefix != "/api/v1" {
		t.Errorf("api prefix = %q", cfg.Server.APIPrefix)
	}

	if cfg.S3.BucketName != "uploadvault" {
		t.Errorf("bucket = %q", cfg.S3.BucketName)
	}

	if cfg.S3.GetPresignExpiry() != time.Hour {
		t.Errorf("presign expiry = %v, want 1h", cfg.S3.GetPresignExpiry())
	}

	// 令牌默认有效期 8 天
	if cfg.Auth.GetTokenTTL() != 8*24*time.Hour {
		t.Errorf("token ttl = %v, want 192h", cfg.Auth.GetTokenTTL())
	}

	if cfg.MQ.Type != configs.GoChannel {
		t.Errorf("mq type = %q, want gochannel", cfg.MQ.Type)
	}
}

// TestInitConfigFromFile 测试从 YAML 文件加载并覆盖默认值.
func TestInitConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
server:
  port: 9090
  debug: true
s3:
  bucket_name: custom-bucket
  public_endpoint: https://cdn.example.com
auth:
  token_secret: file-secret
  token_ttl_minutes: 30
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := configs.InitConfig(path)
	if err != nil {
		t.Fatalf("init config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}

	if !cfg.Server.Debug {
		t.Error("debug not set")
	}

	if cfg.S3.BucketName != "custom-bucket" {
		t.Errorf("bucket = %q", cfg.S3.BucketName)
	}

	if cfg.S3.PublicEndpoint != "https://cdn.example.com" {
		t.Errorf("public endpoint = %q", cfg.S3.PublicEndpoint)
	}

	if cfg.Auth.TokenSecret != "file-secret" {
		t.Errorf("token secret = %q", cfg.Auth.TokenSecret)
	}

	if cfg.Auth.GetTokenTTL() != 30*time.Minute {
		t.Errorf("token ttl = %v, want 30m", cfg.Auth.GetTokenTTL())
	}

	// 未覆盖的段保持默认
	if cfg.Server.APIPrefix != "/api/v1" {
		t.Errorf("api prefix = %q", cfg.Server.APIPrefix)
	}
}

// TestDBConfigDSN 测试各数据库类型的 DSN 生成.
func TestDBConfigDSN(t *testing.T) {
	pg := configs.DBConfig{
		Type: configs.PostgreSQL, Host: "localhost", Port: 5432,
		User: "uv", Password: "pw", Database: "uploadvault", SSLMode: "disable",
	}
	if dsn := pg.GetDSN(); dsn == "" {
		t.Error("postgres dsn empty")
	}

	unknown := configs.DBConfig{Type: "oracle"}
	if dsn := unknown.GetDSN(); dsn != "" {
		t.Errorf("unknown type dsn = %q, want empty", dsn)
	}
}
