package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/query"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// SubscriptionService 定义了新闻通讯订阅的业务逻辑接口。
type SubscriptionService interface {
	// Subscribe 订阅。
	// - 邮箱先经 NormalizeEmail 归一化再落库与匹配。
	// - 新邮箱插入新行；已退订的邮箱复活同一行并刷新订阅时间；
	//   已处于有效订阅的邮箱返回 myErrors.ErrDuplicateSubscription。
	Subscribe(ctx context.Context, email string) (*vo.SubscriptionResponse, error)

	// Unsubscribe 退订。
	// - 只把 Active 置为 false，不删行；对不存在或已退订的邮箱幂等成功。
	Unsubscribe(ctx context.Context, email string) error

	// ListSubscriptions 后台分页查看订阅名单。
	ListSubscriptions(ctx context.Context, activeOnly bool, page, limit int) (*vo.SubscriptionPageVO, error)

	// ListActiveEmails 供邮件推送消费者使用的全量有效邮箱名单。
	ListActiveEmails(ctx context.Context) ([]string, error)
}

// subscribeAction 订阅请求相对现有记录的处置决策。
type subscribeAction int

const (
	subscribeCreate     subscribeAction = iota // 无记录，插入新行
	subscribeReactivate                        // 有已退订记录，复活
	subscribeDuplicate                         // 已有效订阅，报错
)

// resolveSubscribe 根据现有记录决定订阅请求的处置方式。
// - existing 为 nil 表示邮箱没有任何历史记录。
func resolveSubscribe(existing *entities.Subscription) subscribeAction {
	if existing == nil {
		return subscribeCreate
	}
	if existing.Active {
		return subscribeDuplicate
	}
	return subscribeReactivate
}

type subscriptionService struct {
	subRepo mysql.SubscriptionRepository
	logger  *core.ZapLogger
}

// NewSubscriptionService 是 subscriptionService 的构造函数。
func NewSubscriptionService(subRepo mysql.SubscriptionRepository, logger *core.ZapLogger) SubscriptionService {
	return &subscriptionService{
		subRepo: subRepo,
		logger:  logger,
	}
}

// Subscribe 实现订阅（含复活语义）。
func (s *subscriptionService) Subscribe(ctx context.Context, email string) (*vo.SubscriptionResponse, error) {
	email = NormalizeEmail(email)
	existing, err := s.subRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return nil, err
	}

	switch resolveSubscribe(existing) {
	case subscribeDuplicate:
		return nil, myErrors.ErrDuplicateSubscription

	case subscribeReactivate:
		existing.Active = true
		existing.SubscribedAt = time.Now()
		if err := s.subRepo.SaveSubscription(ctx, existing); err != nil {
			return nil, fmt.Errorf("复活订阅失败: %w", err)
		}
		s.logger.Info("订阅已复活", zap.Uint64("subscriptionID", existing.ID))
		responses := vo.MapSubscriptionsToResponsesVO([]*entities.Subscription{existing})
		return responses[0], nil

	default:
		sub := &entities.Subscription{
			Email:        email,
			Active:       true,
			SubscribedAt: time.Now(),
		}
		if err := s.subRepo.CreateSubscription(ctx, sub); err != nil {
			return nil, fmt.Errorf("创建订阅失败: %w", err)
		}
		s.logger.Info("新订阅创建成功", zap.Uint64("subscriptionID", sub.ID))
		responses := vo.MapSubscriptionsToResponsesVO([]*entities.Subscription{sub})
		return responses[0], nil
	}
}

// Unsubscribe 实现退订，幂等。
func (s *subscriptionService) Unsubscribe(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	existing, err := s.subRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 退订一个从未订阅过的邮箱视为成功，避免退订链接重复点击报错
			return nil
		}
		return err
	}
	if !existing.Active {
		return nil
	}

	existing.Active = false
	if err := s.subRepo.SaveSubscription(ctx, existing); err != nil {
		return fmt.Errorf("退订失败: %w", err)
	}

	s.logger.Info("退订成功", zap.Uint64("subscriptionID", existing.ID))
	return nil
}

// ListSubscriptions 实现订阅名单分页。
func (s *subscriptionService) ListSubscriptions(ctx context.Context, activeOnly bool, page, limit int) (*vo.SubscriptionPageVO, error) {
	window := query.Window{Page: page, Limit: limit}.Normalize()

	subs, total, err := s.subRepo.ListSubscriptions(ctx, activeOnly, window.Offset(), window.Limit)
	if err != nil {
		return nil, err
	}

	return &vo.SubscriptionPageVO{
		Subscriptions: vo.MapSubscriptionsToResponsesVO(subs),
		Pagination: vo.Pagination{
			Total: total,
			Page:  window.Page,
			Limit: window.Limit,
			Pages: window.Pages(total),
		},
	}, nil
}

// ListActiveEmails 透传仓库层的有效邮箱名单。
func (s *subscriptionService) ListActiveEmails(ctx context.Context) ([]string, error) {
	return s.subRepo.ListActiveEmails(ctx)
}
