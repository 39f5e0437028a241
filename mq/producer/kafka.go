package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
// - 注意: 未配置 brokers 时生产者为 nil，此时事件直接丢弃（本地开发无 Kafka 也能跑通主流程）
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	if p == nil {
		return nil
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendPostPublishedEvent 发送文章发布事件到 Kafka
// - 意图: 草稿→已发布的状态迁移后通知下游（订阅邮件推送）
// - 输入: ctx context.Context 上下文, postData events.PostData 文章核心数据
// - 输出: error 错误信息
func (p *KafkaProducer) SendPostPublishedEvent(ctx context.Context, postData events.PostData) error {
	event := events.PostPublishedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postData,
	}
	return p.SendEvent(ctx, p.topics.PostPublished, event)
}

// SendPostDeleteEvent 发送文章删除事件到 Kafka
// - 意图: 通知下游清理与该文章相关的派生数据
// - 输入: ctx context.Context 上下文, postID uint64 文章ID
// - 输出: error 错误信息
func (p *KafkaProducer) SendPostDeleteEvent(ctx context.Context, postID uint64) error {
	event := events.PostDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		PostID:    postID,
	}
	return p.SendEvent(ctx, p.topics.PostDeleted, event)
}

// SendCommentPendingEvent 发送新评论待审核事件到 Kafka
// - 意图: 新评论落库后异步通知文章作者处理审核队列
func (p *KafkaProducer) SendCommentPendingEvent(ctx context.Context, comment events.CommentPendingEvent) error {
	if comment.EventID == "" {
		comment.EventID = uuid.New().String()
	}
	if comment.Timestamp.IsZero() {
		comment.Timestamp = time.Now()
	}
	return p.SendEvent(ctx, p.topics.CommentPending, comment)
}

// Close 关闭底层 writer，进程退出前调用
func (p *KafkaProducer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
