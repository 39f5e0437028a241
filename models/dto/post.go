package dto

import (
	"github.com/Xushengqwer/blog_service/models/enums"
)

// CreatePostRequest 定义了创建文章的请求数据结构
// - 添加了 binding 标签用于输入验证
type CreatePostRequest struct {
	Title           string   `json:"title" binding:"required,max=255"`              // 标题，必填，最大255字符
	Slug            string   `json:"slug" binding:"omitempty,max=255"`              // Slug，可选，为空时由服务端根据标题生成
	Excerpt         string   `json:"excerpt" binding:"omitempty,max=512"`           // 摘要，可选
	Body            string   `json:"body" binding:"required"`                       // 正文 HTML，必填
	Categories      []string `json:"categories" binding:"omitempty,dive,max=50"`    // 分类列表，可选
	Tags            []string `json:"tags" binding:"omitempty,dive,max=50"`          // 标签列表，可选
	FeatureImageURL string   `json:"feature_image_url" binding:"omitempty,url|uri"` // 题图 URL，可选
	// Status 初始状态，可选：0=草稿, 1=发布（默认直接发布）
	Status *enums.PostStatus `json:"status" binding:"omitempty,oneof=0 1" swaggertype:"integer"`

	// SEO 元数据，均可选
	MetaTitle       string `json:"meta_title" binding:"omitempty,max=255"`
	MetaDescription string `json:"meta_description" binding:"omitempty,max=512"`
	CanonicalURL    string `json:"canonical_url" binding:"omitempty,url|uri"`
}

// UpdatePostRequest 定义了更新文章的请求数据结构
// - 指针字段用于区分 "未提交" 与 "提交了零值"，未提交的字段保持原值
type UpdatePostRequest struct {
	Title           *string   `json:"title" binding:"omitempty,max=255"`
	Slug            *string   `json:"slug" binding:"omitempty,max=255"`
	Excerpt         *string   `json:"excerpt" binding:"omitempty,max=512"`
	Body            *string   `json:"body"`
	Categories      *[]string `json:"categories" binding:"omitempty,dive,max=50"`
	Tags            *[]string `json:"tags" binding:"omitempty,dive,max=50"`
	FeatureImageURL *string   `json:"feature_image_url" binding:"omitempty,url|uri"`
	// Status 目标状态，草稿→发布的迁移会首次写入 PublishedAt
	Status *enums.PostStatus `json:"status" binding:"omitempty,oneof=0 1" swaggertype:"integer"`

	MetaTitle       *string `json:"meta_title" binding:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" binding:"omitempty,max=512"`
	CanonicalURL    *string `json:"canonical_url" binding:"omitempty,url|uri"`
}

// ListPostsRequest 定义了文章列表的查询参数。
// - 用于控制器层接收和验证来自客户端的HTTP请求，随后交给查询组装器翻译成谓词树。
type ListPostsRequest struct {
	// Mine 为 true 时返回调用者名下的全部文章（含草稿），需要登录；
	// 缺省只返回已发布文章。
	// - 从URL查询参数 "mine" 获取。
	Mine bool `form:"mine"`

	// Q 关键字搜索，同时匹配标题、正文和摘要，大小写不敏感
	// - binding:"omitempty,max=255": 可选，如果提供，最大长度为255个字符。
	Q *string `form:"q" binding:"omitempty,max=255"`

	// Category 分类筛选；传 "All" 等价于不筛选
	Category *string `form:"category" binding:"omitempty,max=50"`

	// Tag 标签筛选
	Tag *string `form:"tag" binding:"omitempty,max=50"`

	// Page 页码，从 1 开始，缺省为 1
	Page int `form:"page" binding:"omitempty,gte=1"`

	// Limit 每页数量，缺省为 10，上限 100
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}
