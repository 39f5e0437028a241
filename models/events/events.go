package events

import "time"

// PostData 事件中携带的文章核心数据
// - 只放下游消费方（邮件推送等）需要的字段，不携带正文全文
type PostData struct {
	PostID      uint64    `json:"post_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	AuthorID    string    `json:"author_id"`
	PublishedAt time.Time `json:"published_at"`
}

// PostPublishedEvent 文章发布事件
// - 草稿→已发布的迁移触发一次；订阅推送消费者据此向订阅名单发送通知
type PostPublishedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Post      PostData  `json:"post"`
}

// PostDeletedEvent 文章删除事件
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"post_id"`
}

// CommentPendingEvent 新评论待审核事件，用于通知文章作者
type CommentPendingEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	CommentID  uint64    `json:"comment_id"`
	PostID     uint64    `json:"post_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
}
