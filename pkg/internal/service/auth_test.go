package service_test

import (
	"context"
	"testing"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

// TestLoginVerifyRoundTrip 测试登录换取令牌再用令牌换回用户.
func TestLoginVerifyRoundTrip(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	issuer := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "test-secret", TokenTTLMinutes: 60})
	auth := service.NewAuthService(users, issuer)
	ctx := context.Background()

	alice, err := users.Create(ctx, admin, types.CreateUserRequest{
		Email:    "alice@example.com",
		Password: "alice-password",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp, err := auth.Login(ctx, types.LoginRequest{Email: "alice@example.com", Password: "alice-password"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q", resp.TokenType)
	}

	if resp.ExpiresIn != 3600 {
		t.Errorf("expires_in = %d, want 3600", resp.ExpiresIn)
	}

	u, err := auth.Verify(ctx, resp.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if u.ID != alice.ID {
		t.Errorf("verified wrong user: %s", u.ID)
	}
}

// TestLoginFailures 测试登录失败路径.
func TestLoginFailures(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	_ = newAdmin(t, users)
	issuer := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "test-secret", TokenTTLMinutes: 60})
	auth := service.NewAuthService(users, issuer)
	ctx := context.Background()

	_, err := auth.Login(ctx, types.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	wantErrIs(t, err, service.ErrUnauthorized)

	_, err = auth.Login(ctx, types.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	wantErrIs(t, err, service.ErrUnauthorized)
}

// TestVerifyStaleSubject 测试令牌有效但用户已删除或停用的情形.
func TestVerifyStaleSubject(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	issuer := service.NewTokenIssuer(&configs.AuthConfig{TokenSecret: "test-secret", TokenTTLMinutes: 60})
	auth := service.NewAuthService(users, issuer)
	ctx := context.Background()

	alice, err := users.Create(ctx, admin, types.CreateUserRequest{
		Email:    "alice@example.com",
		Password: "alice-password",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	token, err := issuer.Issue(alice.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// 停用后令牌失效
	if _, err := users.Update(ctx, admin, alice.ID, types.UpdateUserRequest{IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err = auth.Verify(ctx, token)
	wantErrIs(t, err, service.ErrUnauthorized)

	// 删除后令牌失效
	if _, err := users.Update(ctx, admin, alice.ID, types.UpdateUserRequest{IsActive: boolPtr(true)}); err != nil {
		t.Fatalf("reactivate: %v", err)
	}

	if err := users.Delete(ctx, admin, alice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = auth.Verify(ctx, token)
	wantErrIs(t, err, service.ErrUnauthorized)
}
