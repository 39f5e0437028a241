package enums

// PostStatus 表示文章的发布状态。
// - 0 = 草稿 (Draft)：仅作者本人和超级管理员可见。
// - 1 = 已发布 (Published)：对所有访客公开。
type PostStatus int

const (
	PostDraft     PostStatus = 0 // 草稿
	PostPublished PostStatus = 1 // 已发布
)

// IsValid 校验状态值是否在合法范围内。
func (s PostStatus) IsValid() bool {
	return s == PostDraft || s == PostPublished
}

// String 返回状态的可读名称，主要用于日志输出。
func (s PostStatus) String() string {
	switch s {
	case PostDraft:
		return "draft"
	case PostPublished:
		return "published"
	default:
		return "unknown"
	}
}
