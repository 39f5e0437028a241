package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// AccountService 定义了账户体系的业务逻辑接口。
type AccountService interface {
	// Register 注册新账户，邮箱冲突返回 myErrors.ErrEmailTaken。
	// - 新账户默认为作者角色，成功后直接签发令牌（注册即登录）。
	Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResponse, error)

	// Login 校验邮箱密码并签发令牌。
	// - 邮箱不存在与密码错误统一返回 myErrors.ErrInvalidCredentials。
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResponse, error)

	// GetProfile 取当前登录用户的资料。
	GetProfile(ctx context.Context, userID string) (*vo.UserResponse, error)

	// UpdateProfile 更新当前登录用户的资料（昵称、邮箱、头像、密码，均可选）。
	// - 改邮箱时做归一化与唯一性检查，被占用返回 myErrors.ErrEmailTaken。
	// - 改密码时重新走 bcrypt 哈希，旧令牌不失效。
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*vo.UserResponse, error)
}

type accountService struct {
	userRepo mysql.UserRepository
	tokens   *auth.TokenManager
	logger   *core.ZapLogger
}

// NewAccountService 是 accountService 的构造函数。
func NewAccountService(userRepo mysql.UserRepository, tokens *auth.TokenManager, logger *core.ZapLogger) AccountService {
	return &accountService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register 实现注册流程。
func (s *accountService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, myErrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("注册：密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         enums.RoleAuthor,
		ProfileImg:   req.ProfileImg,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("新用户注册成功", zap.String("userID", user.ID))
	return &vo.AuthResponse{
		Token: token,
		User:  vo.MapUserToResponseVO(user),
	}, nil
}

// Login 实现登录流程。
func (s *accountService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 不区分 "邮箱不存在" 与 "密码错误"
			return nil, myErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn("登录失败：密码不匹配", zap.String("userID", user.ID))
		return nil, myErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("用户登录成功", zap.String("userID", user.ID))
	return &vo.AuthResponse{
		Token: token,
		User:  vo.MapUserToResponseVO(user),
	}, nil
}

// GetProfile 实现资料读取。
func (s *accountService) GetProfile(ctx context.Context, userID string) (*vo.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := vo.MapUserToResponseVO(user)
	return &resp, nil
}

// UpdateProfile 实现资料更新。
func (s *accountService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*vo.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ProfileImg != nil {
		user.ProfileImg = *req.ProfileImg
	}
	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		if email != user.Email {
			exists, err := s.userRepo.EmailExists(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, myErrors.ErrEmailTaken
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error("更新资料：密码哈希失败", zap.Error(err), zap.String("userID", userID))
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	resp := vo.MapUserToResponseVO(user)
	return &resp, nil
}
