package dto

import (
	"github.com/Xushengqwer/blog_service/models/enums"
)

// CreateCommentRequest 定义了访客发表评论的请求数据结构
// - 无需登录，昵称与邮箱由访客自行填写
type CreateCommentRequest struct {
	AuthorName  string `json:"author_name" binding:"required,max=100"` // 昵称，必填
	AuthorEmail string `json:"author_email" binding:"required,email"`  // 邮箱，必填且须为合法格式
	Content     string `json:"content" binding:"required,max=2000"`    // 评论内容，必填
}

// ListCommentsRequest 定义了后台评论队列的查询参数
type ListCommentsRequest struct {
	// Status 审核状态筛选，可选：0=待审核, 1=已通过, 2=已拒绝；缺省返回全部状态
	Status *enums.CommentStatus `form:"status" binding:"omitempty,oneof=0 1 2" swaggertype:"integer"`

	// PostID 按文章筛选，可选
	PostID *uint64 `form:"post_id" binding:"omitempty,gte=1"`

	Page  int `form:"page" binding:"omitempty,gte=1"`
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// ModerateCommentRequest 定义了评论审核的请求数据结构
type ModerateCommentRequest struct {
	// Status 目标状态：1=通过, 2=拒绝（不允许回退为待审核）
	Status enums.CommentStatus `json:"status" binding:"required,oneof=1 2" swaggertype:"integer"`
}
