package dto

// SubscribeRequest 定义了订阅新闻通讯的请求数据结构
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UnsubscribeRequest 定义了退订的请求数据结构
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ListSubscriptionsRequest 定义了后台订阅名单的查询参数
type ListSubscriptionsRequest struct {
	// ActiveOnly 为 true 时仅返回有效订阅，缺省返回全部
	ActiveOnly bool `form:"active_only"`

	Page  int `form:"page" binding:"omitempty,gte=1"`
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}
