package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/storage/db"
	"github.com/yeisme/uploadvault/pkg/internal/storage/mq"
	"github.com/yeisme/uploadvault/pkg/internal/types"
	"github.com/yeisme/uploadvault/pkg/queue"
	nlog "github.com/yeisme/uploadvault/pkg/log"
)

// UserService 用户目录，身份与权限的唯一事实来源. 口令散列只在这里处理.
type UserService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

// NewUserService 构造 UserService. mqClient 可以为 nil，此时不发布事件.
func NewUserService(dbClient *db.Client, mqClient *mq.Client) *UserService {
	return &UserService{
		dbClient: dbClient,
		mqClient: mqClient,
	}
}

// GetByID 按 ID 查询用户.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := s.dbClient.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}

		return nil, err
	}

	return &u, nil
}

// GetByEmail 按邮箱查询用户. 邮箱按存储值精确匹配.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := s.dbClient.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}

		return nil, err
	}

	return &u, nil
}

// Authenticate 校验邮箱口令组合. 用户不存在、口令不符或账号停用均返回
// ErrUnauthorized，不向调用方泄露差异.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if !u.IsActive {
		return nil, fmt.Errorf("%w: inactive user", ErrUnauthorized)
	}

	return u, nil
}

// Create 创建用户，仅超级用户可调用. 邮箱冲突返回 ErrConflict.
func (s *UserService) Create(ctx context.Context, actor *model.User, req types.CreateUserRequest) (*model.User, error) {
	if !CanManageUsers(actor) {
		return nil, fmt.Errorf("create user: %w", ErrForbidden)
	}

	return s.create(ctx, req)
}

func (s *UserService) create(ctx context.Context, req types.CreateUserRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)

	if _, err := s.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s already registered: %w", email, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		ID:             uuid.NewString(),
		Email:          email,
		FullName:       req.FullName,
		HashedPassword: string(hashed),
		IsActive:       true,
		IsSuperuser:    req.IsSuperuser,
	}

	if err := s.dbClient.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.publishUserCreated(&u)

	return &u, nil
}

// Update 应用部分更新. 普通用户只能更新自己，且不能改动 is_active/is_superuser；
// 超级用户可以更新任何字段. 为 nil 的补丁字段保持原值，并发更新为后写覆盖.
func (s *UserService) Update(ctx context.Context, actor *model.User, id string, patch types.UpdateUserRequest) (*model.User, error) {
	if actor == nil {
		return nil, fmt.Errorf("update user: %w", ErrUnauthorized)
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsSuperuser {
		if actor.ID != u.ID {
			return nil, fmt.Errorf("update user %s: %w", id, ErrForbidden)
		}

		if patch.IsActive != nil || patch.IsSuperuser != nil {
			return nil, fmt.Errorf("privilege fields require superuser: %w", ErrForbidden)
		}
	}

	changed := make([]string, 0, 5)

	if patch.Email != nil && *patch.Email != u.Email {
		email := strings.TrimSpace(*patch.Email)
		if other, err := s.GetByEmail(ctx, email); err == nil && other.ID != u.ID {
			return nil, fmt.Errorf("email %s already registered: %w", email, ErrConflict)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		u.Email = email
		changed = append(changed, "email")
	}

	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}

		u.HashedPassword = string(hashed)
		changed = append(changed, "password")
	}

	if patch.FullName != nil {
		u.FullName = *patch.FullName
		changed = append(changed, "full_name")
	}

	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
		changed = append(changed, "is_active")
	}

	if patch.IsSuperuser != nil {
		u.IsSuperuser = *patch.IsSuperuser
		changed = append(changed, "is_superuser")
	}

	if len(changed) == 0 {
		return u, nil
	}

	if err := s.dbClient.WithContext(ctx).Save(u).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.publishUserUpdated(u, changed)

	return u, nil
}

// Delete 删除用户，仅超级用户可调用，且不能删除自己.
func (s *UserService) Delete(ctx context.Context, actor *model.User, id string) error {
	if !CanManageUsers(actor) {
		return fmt.Errorf("delete user: %w", ErrForbidden)
	}

	if actor.ID == id {
		return fmt.Errorf("cannot delete yourself: %w", ErrInvalid)
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.dbClient.WithContext(ctx).Delete(u).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if s.mqClient != nil {
		payload := queue.UserDeletedPayload{User: queue.UserRef{UserID: u.ID, Email: u.Email}}
		if msg, err := queue.NewWatermillMessage(queue.TopicUserDeleted, payload, queue.WithProducer("uploadvault")); err == nil {
			if err := s.mqClient.Publish(ctx, queue.TopicUserDeleted, msg); err != nil {
				nlog.Logger().Warn().Err(err).Msg("publish user deleted event failed")
			}
		}
	}

	return nil
}

// List 列出用户，仅超级用户可调用. limit 必须为正，超过上限收敛.
func (s *UserService) List(ctx context.Context, actor *model.User, limit, offset int) ([]model.User, int64, error) {
	if !CanManageUsers(actor) {
		return nil, 0, fmt.Errorf("list users: %w", ErrForbidden)
	}

	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.dbClient.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := s.dbClient.WithContext(ctx).
		Order("created_at, id").
		Limit(limit).Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// EnsureFirstSuperuser 启动时创建初始超级用户，已存在则什么也不做.
// 配置为空时跳过.
func (s *UserService) EnsureFirstSuperuser(ctx context.Context, cfg *configs.AuthConfig) error {
	if cfg.FirstSuperuser == "" {
		return nil
	}

	_, err := s.GetByEmail(ctx, cfg.FirstSuperuser)
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrNotFound) {
		return err
	}

	u, err := s.create(ctx, types.CreateUserRequest{
		Email:       cfg.FirstSuperuser,
		Password:    cfg.FirstSuperuserPassword,
		FullName:    "Initial Superuser",
		IsSuperuser: true,
	})
	if err != nil {
		return fmt.Errorf("bootstrap first superuser: %w", err)
	}

	nlog.Logger().Info().Str("email", u.Email).Msg("first superuser created")

	return nil
}

func (s *UserService) publishUserCreated(u *model.User) {
	if s.mqClient == nil {
		return
	}

	payload := queue.UserCreatedPayload{
		User:        queue.UserRef{UserID: u.ID, Email: u.Email},
		IsSuperuser: u.IsSuperuser,
	}
	if err := queue.PublishUserCreated(s.mqClient.Publisher(), payload, queue.WithProducer("uploadvault")); err != nil {
		nlog.Logger().Warn().Err(err).Msg("publish user created event failed")
	}
}

func (s *UserService) publishUserUpdated(u *model.User, changed []string) {
	if s.mqClient == nil {
		return
	}

	payload := queue.UserUpdatedPayload{
		User:          queue.UserRef{UserID: u.ID, Email: u.Email},
		ChangedFields: changed,
	}
	if msg, err := queue.NewWatermillMessage(queue.TopicUserUpdated, payload, queue.WithProducer("uploadvault")); err == nil {
		if err := s.mqClient.Publish(context.Background(), queue.TopicUserUpdated, msg); err != nil {
			nlog.Logger().Warn().Err(err).Msg("publish user updated event failed")
		}
	}
}
