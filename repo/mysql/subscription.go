package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// SubscriptionRepository 定义了订阅数据在 MySQL 中的持久化操作接口。
type SubscriptionRepository interface {
	// CreateSubscription 持久化一条新订阅。
	CreateSubscription(ctx context.Context, sub *entities.Subscription) error

	// GetByEmail 根据邮箱检索订阅记录（含已退订的），未找到返回 commonerrors.ErrRepoNotFound。
	// - 重新订阅的复活逻辑需要看到 Active=false 的行。
	GetByEmail(ctx context.Context, email string) (*entities.Subscription, error)

	// SaveSubscription 全量保存订阅实体（复活 / 退订都走这里）。
	SaveSubscription(ctx context.Context, sub *entities.Subscription) error

	// ListActiveEmails 返回全部有效订阅邮箱，邮件推送消费者使用。
	ListActiveEmails(ctx context.Context) ([]string, error)

	// ListSubscriptions 分页查询订阅名单，activeOnly 控制是否只看有效订阅。
	ListSubscriptions(ctx context.Context, activeOnly bool, offset, limit int) ([]*entities.Subscription, int64, error)

	// CountActive 统计有效订阅数。
	CountActive(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewSubscriptionRepository 是 subscriptionRepository 的构造函数。
func NewSubscriptionRepository(db *gorm.DB, logger *core.ZapLogger) SubscriptionRepository {
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		r.logger.Error("创建订阅失败", zap.Error(err))
		return err
	}
	return nil
}

func (r *subscriptionRepository) GetByEmail(ctx context.Context, email string) (*entities.Subscription, error) {
	var sub entities.Subscription
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据邮箱获取订阅数据库查询失败", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) SaveSubscription(ctx context.Context, sub *entities.Subscription) error {
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		r.logger.Error("保存订阅失败", zap.Error(err), zap.Uint64("subscriptionID", sub.ID))
		return err
	}
	return nil
}

func (r *subscriptionRepository) ListActiveEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("active = ?", true).
		Pluck("email", &emails).Error
	if err != nil {
		r.logger.Error("获取有效订阅邮箱列表失败", zap.Error(err))
		return nil, err
	}
	return emails, nil
}

func (r *subscriptionRepository) ListSubscriptions(ctx context.Context, activeOnly bool, offset, limit int) ([]*entities.Subscription, int64, error) {
	var subs []*entities.Subscription
	var totalCount int64

	baseQuery := r.db.WithContext(ctx).Model(&entities.Subscription{})
	countQuery := r.db.WithContext(ctx).Model(&entities.Subscription{})
	if activeOnly {
		baseQuery = baseQuery.Where("active = ?", true)
		countQuery = countQuery.Where("active = ?", true)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("订阅名单计数失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数订阅失败: %w", err)
	}
	if totalCount == 0 {
		return subs, 0, nil
	}

	err := baseQuery.
		Order("subscribed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		r.logger.Error("订阅名单列表查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("查询订阅名单失败: %w", err)
	}

	return subs, totalCount, nil
}

func (r *subscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("active = ?", true).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计有效订阅数失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}
