package vo

// DashboardStatsVO 定义了后台仪表盘的统计响应结构
// - 数据聚合自 MySQL 计数查询，浏览量总数来自文章表的快照列
type DashboardStatsVO struct {
	TotalPosts        int64 `json:"total_posts"`        // 文章总数（含草稿）
	PublishedPosts    int64 `json:"published_posts"`    // 已发布文章数
	DraftPosts        int64 `json:"draft_posts"`        // 草稿数
	TotalViews        int64 `json:"total_views"`        // 浏览量合计
	PendingComments   int64 `json:"pending_comments"`   // 待审核评论数
	ApprovedComments  int64 `json:"approved_comments"`  // 已通过评论数
	ActiveSubscribers int64 `json:"active_subscribers"` // 有效订阅数

	// 最近动态，各取最新 5 条
	RecentPosts    []*PostResponse    `json:"recent_posts"`
	RecentComments []*CommentResponse `json:"recent_comments"`
}

// AIDraftVO 定义了 AI 生成草稿的响应结构
type AIDraftVO struct {
	// Content 清洗后的正文 HTML，可直接填入编辑器
	Content string `json:"content"`
}

// AITitlesVO 定义了 AI 候选标题的响应结构
type AITitlesVO struct {
	// Titles 候选标题列表，通常为 3 条
	Titles []string `json:"titles"`
}

// AICategoryVO 定义了 AI 分类推荐的响应结构
type AICategoryVO struct {
	// Category 推荐分类，保证取自请求中的候选列表
	Category string `json:"category"`
}

// UploadResultVO 定义了文件上传成功的响应结构
type UploadResultVO struct {
	URL string `json:"url"` // 对象的公开访问URL
}
