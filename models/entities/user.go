package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// User 用户实体
// - 使用场景: 后台账户体系，涵盖读者、作者与管理员
// - 说明: 不嵌入 BaseModel，主键使用 UUID 字符串而非自增ID，
//   文章表的 AuthorID (char(36)) 直接引用这里的 ID
type User struct {
	// 主键，UUID 格式，创建时由服务层生成
	ID string `gorm:"type:char(36);primaryKey"`

	// 登录邮箱，全局唯一
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 展示名，文章页署名用，可为空
	Name string `gorm:"type:varchar(100)"`

	// 密码哈希，bcrypt 编码结果
	// - 注意: 任何查询出口都不得把该字段回传给客户端
	PasswordHash string `gorm:"type:varchar(255);not null"`

	// 角色，枚举类型：0=读者, 1=作者, 2=管理员, 3=超级管理员
	Role enums.UserRole `gorm:"type:int;default:0"`

	// 头像URL，可为空
	ProfileImg string `gorm:"type:varchar(1023)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
