package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// PostResponseWrapper 对应 response.APIResponse[vo.PostResponse]
type PostResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostResponse `json:"data"`
}

// PostPageResponseWrapper 对应 response.APIResponse[vo.PostPageVO]
type PostPageResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    PostPageVO `json:"data"`
}

// CommentPageResponseWrapper 对应 response.APIResponse[vo.CommentPageVO]
type CommentPageResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    CommentPageVO `json:"data"`
}

// CommentResponseWrapper 对应 response.APIResponse[vo.CommentResponse]
type CommentResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    CommentResponse `json:"data"`
}

// AuthResponseWrapper 对应 response.APIResponse[vo.AuthResponse]
type AuthResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    AuthResponse `json:"data"`
}

// UserResponseWrapper 对应 response.APIResponse[vo.UserResponse]
type UserResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    UserResponse `json:"data"`
}

// SubscriptionResponseWrapper 对应 response.APIResponse[vo.SubscriptionResponse]
type SubscriptionResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    SubscriptionResponse `json:"data"`
}

// SubscriptionPageResponseWrapper 对应 response.APIResponse[vo.SubscriptionPageVO]
type SubscriptionPageResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    SubscriptionPageVO `json:"data"`
}

// DashboardStatsResponseWrapper 对应 response.APIResponse[vo.DashboardStatsVO]
type DashboardStatsResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    DashboardStatsVO `json:"data"`
}

// AIDraftResponseWrapper 对应 response.APIResponse[vo.AIDraftVO]
type AIDraftResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    AIDraftVO `json:"data"`
}

// AITitlesResponseWrapper 对应 response.APIResponse[vo.AITitlesVO]
type AITitlesResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    AITitlesVO `json:"data"`
}

// AICategoryResponseWrapper 对应 response.APIResponse[vo.AICategoryVO]
type AICategoryResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    AICategoryVO `json:"data"`
}

// UploadResultResponseWrapper 对应 response.APIResponse[vo.UploadResultVO]
type UploadResultResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    UploadResultVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
