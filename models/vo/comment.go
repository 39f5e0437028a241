package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// CommentResponse 定义了评论的响应数据结构
type CommentResponse struct {
	ID          uint64              `json:"id"`
	PostID      uint64              `json:"post_id"`
	AuthorName  string              `json:"author_name"`
	AuthorEmail string              `json:"author_email,omitempty"` // 仅审核接口返回，公开接口置空
	Content     string              `json:"content"`
	Status      enums.CommentStatus `json:"status"` // 0=待审核, 1=已通过, 2=已拒绝
	CreatedAt   time.Time           `json:"created_at"`
}

// CommentPageVO 定义了评论分页查询的响应结构
type CommentPageVO struct {
	Comments   []*CommentResponse `json:"comments"`
	Pagination Pagination         `json:"pagination"`
}

// MapCommentsToResponsesVO 将评论实体列表转换为响应VO列表
// - includeEmail 控制是否暴露留言者邮箱，公开接口必须传 false
func MapCommentsToResponsesVO(comments []*entities.Comment, includeEmail bool) []*CommentResponse {
	if len(comments) == 0 {
		return []*CommentResponse{}
	}
	responses := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		resp := &CommentResponse{
			ID:         comment.ID,
			PostID:     comment.PostID,
			AuthorName: comment.AuthorName,
			Content:    comment.Content,
			Status:     comment.Status,
			CreatedAt:  comment.CreatedAt,
		}
		if includeEmail {
			resp.AuthorEmail = comment.AuthorEmail
		}
		responses = append(responses, resp)
	}
	return responses
}
