package s3_test

import (
	"testing"

	"github.com/yeisme/uploadvault/pkg/internal/storage/s3"
)

// TestRewritePublicURL 测试签名 URL 主机重写.
func TestRewritePublicURL(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		endpoint string
		want     string
	}{
		{
			name:     "empty endpoint keeps url",
			rawURL:   "http://minio:9000/bucket/key?sig=abc",
			endpoint: "",
			want:     "http://minio:9000/bucket/key?sig=abc",
		},
		{
			name:     "host only endpoint",
			rawURL:   "http://minio:9000/bucket/key?sig=abc",
			endpoint: "files.example.com:9000",
			want:     "http://files.example.com:9000/bucket/key?sig=abc",
		},
		{
			name:     "endpoint with scheme overrides scheme",
			rawURL:   "http://minio:9000/bucket/key?sig=abc",
			endpoint: "https://cdn.example.com",
			want:     "https://cdn.example.com/bucket/key?sig=abc",
		},
		{
			name:     "query string survives rewrite",
			rawURL:   "http://minio:9000/b/k?X-Amz-Signature=s&X-Amz-Expires=3600",
			endpoint: "localhost:9000",
			want:     "http://localhost:9000/b/k?X-Amz-Signature=s&X-Amz-Expires=3600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s3.RewritePublicURL(tt.rawURL, tt.endpoint); got != tt.want {
				t.Errorf("RewritePublicURL(%q, %q) = %q, want %q", tt.rawURL, tt.endpoint, got, tt.want)
			}
		})
	}
}
