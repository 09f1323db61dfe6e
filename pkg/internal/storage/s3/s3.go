// Package s3 处理对象存储操作，负责预签名 URL 的签发与对象删除.
package s3

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/uploadvault/pkg/configs"
	nlog "github.com/yeisme/uploadvault/pkg/log"
)

// Client 包装 MinIO 客户端，持有自身配置.
type Client struct {
	*minio.Client
	cfg configs.S3Config
}

// New 初始化 MinIO 客户端并确保 bucket 存在.
func New(ctx context.Context, cfg *configs.S3Config) (*Client, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	var creds *credentials.Credentials
	if cfg.UseInstanceRole {
		// 走环境变量 / IAM 凭证链
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.EnvMinio{},
			&credentials.IAM{},
		})
	} else {
		creds = credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("uploadvault", configs.AppVersion)

	c := &Client{Client: cli, cfg: *cfg}

	if err := c.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("s3 connected")

	return c, nil
}

// EnsureBucket 确保配置的 bucket 存在，不存在则创建.
func (c *Client) EnsureBucket(ctx context.Context) error {
	bkt := c.cfg.BucketName

	exists, err := c.BucketExists(ctx, bkt)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bkt, err)
	}

	if !exists {
		if err := c.MakeBucket(ctx, bkt, minio.MakeBucketOptions{Region: c.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bkt, err)
		}

		nlog.Logger().Info().Str("bucket", bkt).Msg("bucket created")
	}

	return nil
}

// PresignPut 签发对象上传的预签名 PUT URL.
// contentType 非空时一并签入请求头，客户端上传必须携带相同的 Content-Type 才能通过校验.
func (c *Client) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	var (
		u   *url.URL
		err error
	)

	if contentType == "" {
		u, err = c.PresignedPutObject(ctx, c.cfg.BucketName, key, c.cfg.GetPresignExpiry())
	} else {
		headers := http.Header{}
		headers.Set("Content-Type", contentType)
		u, err = c.PresignHeader(ctx, http.MethodPut, c.cfg.BucketName, key, c.cfg.GetPresignExpiry(), url.Values{}, headers)
	}

	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}

	return RewritePublicURL(u.String(), c.cfg.PublicEndpoint), nil
}

// PresignGet 签发对象下载的预签名 GET URL.
// filename 非空时设置 Content-Disposition，浏览器会以该名字保存文件.
func (c *Client) PresignGet(ctx context.Context, key, filename string) (string, error) {
	params := url.Values{}
	if filename != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}

	u, err := c.PresignedGetObject(ctx, c.cfg.BucketName, key, c.cfg.GetPresignExpiry(), params)
	if err != nil {
		return "", fmt.Errorf("presign get %s: %w", key, err)
	}

	return RewritePublicURL(u.String(), c.cfg.PublicEndpoint), nil
}

// Remove 删除指定对象. 对象不存在时 S3 返回成功，调用方无需区分.
func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.RemoveObject(ctx, c.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}

	return nil
}

// RewritePublicURL 把签名 URL 的主机名替换为对外可达的端点.
// 本地部署时容器内的主机名（如 minio:9000）对客户端不可解析，需要替换；
// publicEndpoint 为空时原样返回. 签名对 host 敏感，仅当两端主机名一致签名才有效，
// 该替换只适用于 MinIO 以同一主机多个别名暴露的场景.
func RewritePublicURL(rawURL, publicEndpoint string) string {
	if publicEndpoint == "" {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	// publicEndpoint 可以带 scheme（https://cdn.example.com）或只有 host:port
	if pu, err := url.Parse(publicEndpoint); err == nil && pu.Host != "" {
		u.Host = pu.Host
		if pu.Scheme != "" {
			u.Scheme = pu.Scheme
		}
	} else {
		u.Host = publicEndpoint
	}

	return u.String()
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)

	return err
}

// Bucket 返回配置的 bucket 名称.
func (c *Client) Bucket() string {
	return c.cfg.BucketName
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}
