package enums

// CommentStatus 表示评论的审核状态。
// - 评论创建时始终为待审核，无论客户端提交了什么值。
// - 只有特权角色（文章作者或超级管理员）可以变更状态。
// - 状态机: pending → approved, pending → rejected, approved ↔ rejected。
//   没有终态，评论在被删除前始终可以被管理员改判。
type CommentStatus int

const (
	CommentPending  CommentStatus = 0 // 待审核
	CommentApproved CommentStatus = 1 // 已通过
	CommentRejected CommentStatus = 2 // 已拒绝
)

// IsValid 校验状态值是否在合法范围内。
func (s CommentStatus) IsValid() bool {
	return s >= CommentPending && s <= CommentRejected
}

// String 返回状态的可读名称，主要用于日志输出。
func (s CommentStatus) String() string {
	switch s {
	case CommentPending:
		return "pending"
	case CommentApproved:
		return "approved"
	case CommentRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
