package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/events"
)

// todo  未配置死信队列

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// Mailer 抽象邮件发送，便于在没有邮件网关的环境下替换实现
type Mailer interface {
	SendPostNotification(ctx context.Context, recipient string, post events.PostData) error
}

// SubscriberSource 提供当前有效订阅邮箱名单
type SubscriberSource interface {
	ListActiveEmails(ctx context.Context) ([]string, error)
}

// --- NewsletterHandler ---

// NewsletterHandler 消费文章发布事件，向订阅名单逐个推送通知
type NewsletterHandler struct {
	logger      *core.ZapLogger
	subscribers SubscriberSource
	mailer      Mailer
}

func NewNewsletterHandler(logger *core.ZapLogger, subscribers SubscriberSource, mailer Mailer) *NewsletterHandler {
	return &NewsletterHandler{
		logger:      logger,
		subscribers: subscribers,
		mailer:      mailer,
	}
}

func (h *NewsletterHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("NewsletterHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.PostPublishedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("NewsletterHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("NewsletterHandler: 成功解析文章发布消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("post_id", event.Post.PostID),
		zap.String("slug", event.Post.Slug))

	emails, err := h.subscribers.ListActiveEmails(ctx)
	if err != nil {
		return fmt.Errorf("NewsletterHandler: 获取订阅名单失败: %w", err)
	}
	if len(emails) == 0 {
		h.logger.Info("NewsletterHandler: 当前没有有效订阅，跳过推送", zap.Uint64("post_id", event.Post.PostID))
		return nil
	}

	// 单个收件人失败只记录，不阻塞其余收件人，也不触发整条消息重试，
	// 避免重复向已送达的订阅者发信
	var failed int
	for _, email := range emails {
		if err := h.mailer.SendPostNotification(ctx, email, event.Post); err != nil {
			failed++
			h.logger.Error("NewsletterHandler: 推送单个订阅者失败",
				zap.Error(err),
				zap.String("recipient", email),
				zap.Uint64("post_id", event.Post.PostID))
		}
	}

	h.logger.Info("NewsletterHandler: 订阅推送完成",
		zap.Uint64("post_id", event.Post.PostID),
		zap.Int("total", len(emails)),
		zap.Int("failed", failed))
	return nil
}

// LogMailer 仅记录日志的 Mailer 实现，未接入邮件网关的环境用它兜底
type LogMailer struct {
	logger *core.ZapLogger
}

func NewLogMailer(logger *core.ZapLogger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPostNotification(_ context.Context, recipient string, post events.PostData) error {
	m.logger.Info("模拟发送新文章通知邮件",
		zap.String("recipient", recipient),
		zap.String("title", post.Title),
		zap.String("slug", post.Slug))
	return nil
}
