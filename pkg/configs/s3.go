package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// S3Config 对象存储（S3/MinIO 兼容）配置.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
	// UseInstanceRole 为 true 时不使用静态密钥，走环境变量/实例角色凭证链（生产部署）.
	UseInstanceRole bool `mapstructure:"use_instance_role"`
	// PresignExpirySeconds 预签名 URL 有效期（秒）.
	PresignExpirySeconds int `mapstructure:"presign_expiry_seconds" rule:"min=1"`
	// PublicEndpoint 客户端可达的对外端点. 本地部署时容器内主机名（如 minio:9000）
	// 对外不可解析，签名 URL 返回前需把主机名替换为该值；为空则不做替换.
	PublicEndpoint string `mapstructure:"public_endpoint"`
}

const (
	DefaultS3Endpoint        = "localhost:9000" // 默认S3端点
	DefaultS3AccessKeyID     = "minioadmin"     // 默认访问密钥ID
	DefaultS3SecretAccessKey = "minioadmin"     // 默认秘密访问密钥
	DefaultS3UseSSL          = false            // 默认是否使用SSL
	DefaultS3BucketName      = "uploadvault"    // 默认存储桶名称
	DefaultS3Region          = "us-east-1"      // 默认区域
	DefaultPresignExpiry     = 3600             // 默认预签名有效期（秒）
)

// GetEndpointURL 获取完整的端点URL.
func (c *S3Config) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// GetPresignExpiry 返回预签名有效期作为 time.Duration.
func (c *S3Config) GetPresignExpiry() time.Duration {
	return time.Duration(c.PresignExpirySeconds) * time.Second
}

// setDefaults 设置 S3 配置的默认值.
func (c *S3Config) setDefaults(v *viper.Viper) {
	v.SetDefault("s3.endpoint", DefaultS3Endpoint)
	v.SetDefault("s3.access_key_id", DefaultS3AccessKeyID)
	v.SetDefault("s3.secret_access_key", DefaultS3SecretAccessKey)
	v.SetDefault("s3.use_ssl", DefaultS3UseSSL)
	v.SetDefault("s3.bucket_name", DefaultS3BucketName)
	v.SetDefault("s3.region", DefaultS3Region)
	v.SetDefault("s3.use_instance_role", false)
	v.SetDefault("s3.presign_expiry_seconds", DefaultPresignExpiry)
	v.SetDefault("s3.public_endpoint", "")
}
