package dto

// RegisterRequest 定义了注册账户的请求数据结构
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`          // 登录邮箱，必填
	Password   string `json:"password" binding:"required,min=8"`       // 密码，至少8位
	Name       string `json:"name" binding:"omitempty,max=100"`        // 展示名，可选
	ProfileImg string `json:"profile_img" binding:"omitempty,url|uri"` // 头像URL，可选
}

// LoginRequest 定义了登录的请求数据结构
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest 定义了更新个人资料的请求数据结构，四个字段均可选
type UpdateProfileRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`        // 展示名
	Email      *string `json:"email" binding:"omitempty,email"`         // 新登录邮箱，被占用时报错
	Password   *string `json:"password" binding:"omitempty,min=8"`      // 新密码，至少8位
	ProfileImg *string `json:"profile_img" binding:"omitempty,url|uri"` // 头像URL
}
