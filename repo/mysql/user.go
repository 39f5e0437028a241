package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
type UserRepository interface {
	// CreateUser 持久化一个新用户，邮箱冲突由数据库唯一索引兜底。
	CreateUser(ctx context.Context, user *entities.User) error

	// GetUserByID 根据 UUID 检索用户，未找到返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id string) (*entities.User, error)

	// GetUserByEmail 根据邮箱检索用户，登录路径使用。
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)

	// EmailExists 判断邮箱是否已注册。
	EmailExists(ctx context.Context, email string) (bool, error)

	// SaveUser 全量保存用户实体（资料更新）。
	SaveUser(ctx context.Context, user *entities.User) error
}

type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Error("创建用户失败", zap.Error(err), zap.String("email", user.Email))
		return err
	}
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.String("userID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.String("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 登录失败路径，不记邮箱明细，避免日志可用于账号探测
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据邮箱获取用户数据库查询失败", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		r.logger.Error("邮箱占用检查失败", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) SaveUser(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.logger.Error("保存用户失败", zap.Error(err), zap.String("userID", user.ID))
		return err
	}
	return nil
}
