package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeisme/uploadvault/pkg/internal/model"
	"github.com/yeisme/uploadvault/pkg/internal/types"
)

// AuthService 组合令牌签发与用户目录，完成登录与请求认证.
type AuthService struct {
	users  *UserService
	issuer *TokenIssuer
}

// NewAuthService 构造 AuthService.
func NewAuthService(users *UserService, issuer *TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Login 校验邮箱口令并签发访问令牌.
func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (*types.TokenResponse, error) {
	u, err := s.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.issuer.TTL().Seconds()),
	}, nil
}

// Verify 校验令牌并解析出对应的用户.
// 令牌有效但用户不存在或已停用时同样视为 ErrUnauthorized.
func (s *AuthService) Verify(ctx context.Context, token string) (*model.User, error) {
	sub, err := s.issuer.ParseSubject(token)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, sub)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: subject no longer exists", ErrUnauthorized)
		}

		return nil, err
	}

	if !u.IsActive {
		return nil, fmt.Errorf("%w: inactive user", ErrUnauthorized)
	}

	return u, nil
}
