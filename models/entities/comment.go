package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// Comment 评论实体
// - 使用场景: 访客对已发布文章的留言，进入审核队列后由文章作者或超级管理员处理
// - 表名: comments
type Comment struct {
	entities.BaseModel

	// 所属文章ID
	// - index: 详情页按文章拉取评论、作者按文章范围做审核都走这条索引
	PostID uint64 `gorm:"not null;index"`

	// 留言者昵称，访客自行填写，不要求注册
	AuthorName string `gorm:"type:varchar(100);not null"`

	// 留言者邮箱，仅用于展示头像与回复通知，不校验归属
	AuthorEmail string `gorm:"type:varchar(255);not null"`

	// 评论内容，纯文本
	Content string `gorm:"type:text;not null"`

	// 审核状态，枚举类型：0=待审核, 1=已通过, 2=已拒绝
	// - 所有新评论一律以待审核落库，公开接口只读已通过的评论
	Status enums.CommentStatus `gorm:"type:int;default:0;index"`
}
