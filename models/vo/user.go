package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// UserResponse 定义了用户信息的响应数据结构
// - 注意: 不包含密码哈希
type UserResponse struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Role       enums.UserRole `json:"role"` // 0=读者, 1=作者, 2=管理员, 3=超级管理员
	ProfileImg string         `json:"profile_img"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AuthResponse 定义了注册/登录成功后的响应结构
type AuthResponse struct {
	Token string       `json:"token"` // 访问令牌，后续请求放入 Authorization: Bearer 头
	User  UserResponse `json:"user"`
}

// MapUserToResponseVO 将用户实体转换为响应VO
func MapUserToResponseVO(user *entities.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		ProfileImg: user.ProfileImg,
		CreatedAt:  user.CreatedAt,
	}
}
