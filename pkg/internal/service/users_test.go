package service_test

import (
	"context"
	"testing"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

// TestEnsureFirstSuperuser 测试初始超级用户引导及其幂等性.
func TestEnsureFirstSuperuser(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	ctx := context.Background()

	cfg := &configs.AuthConfig{
		FirstSuperuser:         "root@example.com",
		FirstSuperuserPassword: "bootstrap-secret",
	}

	if err := users.EnsureFirstSuperuser(ctx, cfg); err != nil {
		t.Fatalf("first call: %v", err)
	}

	u, err := users.GetByEmail(ctx, cfg.FirstSuperuser)
	if err != nil {
		t.Fatalf("get bootstrapped user: %v", err)
	}

	if !u.IsSuperuser {
		t.Error("bootstrapped user is not a superuser")
	}

	if !u.IsActive {
		t.Error("bootstrapped user is not active")
	}

	// 再次调用不应报错也不应重复创建
	if err := users.EnsureFirstSuperuser(ctx, cfg); err != nil {
		t.Fatalf("second call: %v", err)
	}

	// 空配置直接跳过
	if err := users.EnsureFirstSuperuser(ctx, &configs.AuthConfig{}); err != nil {
		t.Fatalf("empty config: %v", err)
	}
}

// TestAuthenticate 测试登录口令校验，各种失败原因返回统一错误.
func TestAuthenticate(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	ctx := context.Background()

	u, err := users.Create(ctx, admin, types.CreateUserRequest{
		Email:    "alice@example.com",
		Password: "alice-password",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// 正确口令
	got, err := users.Authenticate(ctx, "alice@example.com", "alice-password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if got.ID != u.ID {
		t.Errorf("authenticated wrong user: %s", got.ID)
	}

	// 错误口令
	_, err = users.Authenticate(ctx, "alice@example.com", "wrong")
	wantErrIs(t, err, service.ErrUnauthorized)

	// 不存在的用户，与口令错误不可区分
	_, err = users.Authenticate(ctx, "nobody@example.com", "whatever")
	wantErrIs(t, err, service.ErrUnauthorized)

	// 停用账号
	if _, err := users.Update(ctx, admin, u.ID, types.UpdateUserRequest{IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err = users.Authenticate(ctx, "alice@example.com", "alice-password")
	wantErrIs(t, err, service.ErrUnauthorized)
}

// TestCreateUserRules 测试创建用户的权限与冲突规则.
func TestCreateUserRules(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	ctx := context.Background()

	alice, err := users.Create(ctx, admin, types.CreateUserRequest{
		Email:    "alice@example.com",
		Password: "alice-password",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 普通用户无权创建
	_, err = users.Create(ctx, alice, types.CreateUserRequest{
		Email:    "bob@example.com",
		Password: "bob-password",
	})
	wantErrIs(t, err, service.ErrForbidden)

	// 邮箱冲突
	_, err = users.Create(ctx, admin, types.CreateUserRequest{
		Email:    "alice@example.com",
		Password: "other-password",
	})
	wantErrIs(t, err, service.ErrConflict)
}

// TestUpdateUserRules 测试部分更新：自助更新、权限字段门禁与邮箱冲突.
func TestUpdateUserRules(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	ctx := context.Background()

	alice, _ := users.Create(ctx, admin, types.CreateUserRequest{Email: "alice@example.com", Password: "alice-password"})
	bob, _ := users.Create(ctx, admin, types.CreateUserRequest{Email: "bob@example.com", Password: "bob-password"})

	// 自助更新姓名，未补丁字段保持原值
	got, err := users.Update(ctx, alice, alice.ID, types.UpdateUserRequest{FullName: strPtr("Alice A.")})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}

	if got.FullName != "Alice A." {
		t.Errorf("full name not updated: %q", got.FullName)
	}

	if got.Email != "alice@example.com" {
		t.Errorf("email changed unexpectedly: %q", got.Email)
	}

	// 普通用户不能更新别人
	_, err = users.Update(ctx, alice, bob.ID, types.UpdateUserRequest{FullName: strPtr("x")})
	wantErrIs(t, err, service.ErrForbidden)

	// 普通用户不能改权限字段，即使目标是自己
	_, err = users.Update(ctx, alice, alice.ID, types.UpdateUserRequest{IsSuperuser: boolPtr(true)})
	wantErrIs(t, err, service.ErrForbidden)

	// 超级用户可以改权限字段
	got, err = users.Update(ctx, admin, alice.ID, types.UpdateUserRequest{IsSuperuser: boolPtr(true)})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}

	if !got.IsSuperuser {
		t.Error("is_superuser not updated")
	}

	// 改成已占用的邮箱
	_, err = users.Update(ctx, admin, bob.ID, types.UpdateUserRequest{Email: strPtr("alice@example.com")})
	wantErrIs(t, err, service.ErrConflict)

	// 目标不存在
	_, err = users.Update(ctx, admin, "no-such-id", types.UpdateUserRequest{FullName: strPtr("x")})
	wantErrIs(t, err, service.ErrNotFound)
}

// TestDeleteUserRules 测试删除用户的权限规则与自删保护.
func TestDeleteUserRules(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	ctx := context.Background()

	alice, _ := users.Create(ctx, admin, types.CreateUserRequest{Email: "alice@example.com", Password: "alice-password"})

	// 普通用户无权删除
	err := users.Delete(ctx, alice, admin.ID)
	wantErrIs(t, err, service.ErrForbidden)

	// 不能删除自己
	err = users.Delete(ctx, admin, admin.ID)
	wantErrIs(t, err, service.ErrInvalid)

	// 正常删除
	if err := users.Delete(ctx, admin, alice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = users.GetByID(ctx, alice.ID)
	wantErrIs(t, err, service.ErrNotFound)
}

// TestListUsers 测试用户列表的权限与分页.
func TestListUsers(t *testing.T) {
	users := service.NewUserService(newTestDB(t), nil)
	admin := newAdmin(t, users)
	ctx := context.Background()

	alice, _ := users.Create(ctx, admin, types.CreateUserRequest{Email: "alice@example.com", Password: "alice-password"})
	_, _ = users.Create(ctx, admin, types.CreateUserRequest{Email: "bob@example.com", Password: "bob-password"})

	// 普通用户无权列出
	_, _, err := users.List(ctx, alice, 10, 0)
	wantErrIs(t, err, service.ErrForbidden)

	list, total, err := users.List(ctx, admin, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if total != 3 || len(list) != 3 {
		t.Errorf("expected 3 users, got total=%d len=%d", total, len(list))
	}

	// 分页截断但总数不变
	list, total, err = users.List(ctx, admin, 2, 0)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}

	if total != 3 || len(list) != 2 {
		t.Errorf("expected total=3 len=2, got total=%d len=%d", total, len(list))
	}

	// 非法分页参数
	_, _, err = users.List(ctx, admin, 0, 0)
	wantErrIs(t, err, service.ErrInvalid)

	_, _, err = users.List(ctx, admin, 10, -1)
	wantErrIs(t, err, service.ErrInvalid)
}
