package producer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/blog_service/models/events"
)

// 未配置 brokers 时注入的生产者为 nil，发布/删除/评论事件必须静默丢弃而不是 panic。
func TestNilProducerDropsEvents(t *testing.T) {
	var p *KafkaProducer

	assert.NoError(t, p.SendPostPublishedEvent(context.Background(), events.PostData{}))
	assert.NoError(t, p.SendPostDeleteEvent(context.Background(), 1))
	assert.NoError(t, p.SendCommentPendingEvent(context.Background(), events.CommentPendingEvent{}))
	assert.NoError(t, p.Close())
}
