package vo

import (
	"encoding/json"
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// PostResponse 定义了文章的响应数据结构
// - 列表页与详情页共用；列表场景下 Body 会被裁剪为空以减小响应体
type PostResponse struct {
	ID              uint64           `json:"id"`                // 文章ID
	Title           string           `json:"title"`             // 标题
	Slug            string           `json:"slug"`              // URL 标识
	Excerpt         string           `json:"excerpt"`           // 摘要
	Body            string           `json:"body,omitempty"`    // 正文 HTML，列表接口不返回
	AuthorID        string           `json:"author_id"`         // 作者ID
	Categories      []string         `json:"categories"`        // 分类列表
	Tags            []string         `json:"tags"`              // 标签列表
	FeatureImageURL string           `json:"feature_image_url"` // 题图URL
	Status          enums.PostStatus `json:"status"`            // 状态，0=草稿, 1=已发布
	PublishedAt     *time.Time       `json:"published_at"`      // 发布时间，草稿为 null
	ViewCount       int64            `json:"view_count"`        // 浏览量
	MetaTitle       string           `json:"meta_title"`
	MetaDescription string           `json:"meta_description"`
	CanonicalURL    string           `json:"canonical_url"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Author 作者署名信息，仅详情接口填充
	Author *AuthorSummaryVO `json:"author,omitempty"`
}

// AuthorSummaryVO 文章详情页的作者署名摘要
type AuthorSummaryVO struct {
	Name       string `json:"name"`        // 展示名
	ProfileImg string `json:"profile_img"` // 头像URL
}

// Pagination 分页元信息
type Pagination struct {
	Total int64 `json:"total"` // 符合条件的总记录数
	Page  int   `json:"page"`  // 当前页码，从 1 开始
	Limit int   `json:"limit"` // 每页数量
	Pages int   `json:"pages"` // 总页数（向上取整）
}

// PostPageVO 定义了文章分页查询的响应结构
type PostPageVO struct {
	Posts      []*PostResponse `json:"posts"`
	Pagination Pagination      `json:"pagination"`
}

// MapPostToResponseVO 将文章实体转换为响应VO
// - includeBody 为 false 时不携带正文（列表场景）
func MapPostToResponseVO(post *entities.Post, includeBody bool) *PostResponse {
	if post == nil {
		return nil
	}
	resp := &PostResponse{
		ID:              post.ID,
		Title:           post.Title,
		Slug:            post.Slug,
		Excerpt:         post.Excerpt,
		AuthorID:        post.AuthorID,
		Categories:      decodeStringList(post.Categories),
		Tags:            decodeStringList(post.Tags),
		FeatureImageURL: post.FeatureImageURL,
		Status:          post.Status,
		PublishedAt:     post.PublishedAt,
		ViewCount:       post.ViewCount,
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
		CanonicalURL:    post.CanonicalURL,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
	}
	if includeBody {
		resp.Body = post.Body
	}
	return resp
}

// MapPostsToResponsesVO 将文章实体列表转换为响应VO列表（不含正文）
func MapPostsToResponsesVO(posts []*entities.Post) []*PostResponse {
	if len(posts) == 0 {
		return []*PostResponse{} // 返回空切片而不是nil，便于前端处理
	}
	responses := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		if post == nil {
			continue
		}
		responses = append(responses, MapPostToResponseVO(post, false))
	}
	return responses
}

// decodeStringList 把 json 列解码为字符串切片，解码失败时返回空切片
func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}
