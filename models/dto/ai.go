package dto

// GenerateTitlesRequest 定义了 AI 生成候选标题的请求数据结构
type GenerateTitlesRequest struct {
	// Topic 文章主题，例如 "Go 泛型入门"
	Topic string `json:"topic" binding:"required,max=500"`

	// Keywords 希望覆盖的关键词，可为空
	Keywords []string `json:"keywords" binding:"omitempty,max=20,dive,max=100"`
}

// GenerateContentRequest 定义了 AI 生成正文的请求数据结构
type GenerateContentRequest struct {
	// Title 文章标题
	Title string `json:"title" binding:"required,max=500"`

	// Keywords 希望覆盖的关键词，可为空
	Keywords []string `json:"keywords" binding:"omitempty,max=20,dive,max=100"`

	// Tone 写作语气，例如 "professional"、"casual"，为空时使用默认语气
	Tone string `json:"tone" binding:"omitempty,max=50"`
}

// ImproveContentRequest 定义了 AI 润色正文的请求数据结构
type ImproveContentRequest struct {
	// Content 待润色的正文 HTML
	Content string `json:"content" binding:"required,max=50000"`
}

// SuggestCategoryRequest 定义了 AI 推荐分类的请求数据结构
type SuggestCategoryRequest struct {
	// Content 正文 HTML
	Content string `json:"content" binding:"required,max=50000"`

	// Categories 候选分类列表，推荐结果从中选取
	Categories []string `json:"categories" binding:"required,min=1,max=50,dive,max=100"`
}
