package service_test

import (
	"testing"
	"time"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/service"
)

// TestTokenRoundTrip 测试令牌签发与解析的往返.
func TestTokenRoundTrip(t *testing.T) {
	issuer := service.NewTokenIssuer(&configs.AuthConfig{
		TokenSecret:     "test-secret",
		TokenTTLMinutes: 60,
	})

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sub, err := issuer.ParseSubject(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if sub != "user-123" {
		t.Errorf("subject = %q, want user-123", sub)
	}

	if issuer.TTL() != 60*time.Minute {
		t.Errorf("ttl = %v, want 60m", issuer.TTL())
	}
}

// TestTokenWrongSecret 测试不同密钥签发的令牌被拒绝.
func TestTokenWrongSecret(t *testing.T) {
	issuerA := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "secret-a", TokenTTLMinutes: 60})
	issuerB := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "secret-b", TokenTTLMinutes: 60})

	token, err := issuerA.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = issuerB.ParseSubject(token)
	wantErrIs(t, err, service.ErrUnauthorized)
}

// TestTokenExpired 测试过期令牌被拒绝.
func TestTokenExpired(t *testing.T) {
	issuer := service.NewTokenIssuer(&configs.AuthConfig{
		TokenSecret:     "test-secret",
		TokenTTLMinutes: -1,
	})

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = issuer.ParseSubject(token)
	wantErrIs(t, err, service.ErrUnauthorized)
}

// TestTokenGarbage 测试非法令牌字符串被拒绝.
func TestTokenGarbage(t *testing.T) {
	issuer := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "test-secret", TokenTTLMinutes: 60})

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := issuer.ParseSubject(token); err == nil {
			t.Errorf("token %q accepted", token)
		}
	}
}

// TestTokenMissingSubject 测试缺失 subject 的令牌被拒绝.
func TestTokenMissingSubject(t *testing.T) {
	issuer := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "test-secret", TokenTTLMinutes: 60})

	token, err := issuer.Issue("")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = issuer.ParseSubject(token)
	wantErrIs(t, err, service.ErrUnauthorized)
}
