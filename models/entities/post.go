package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// Post 文章实体
// - 使用场景: 博客站点的核心内容对象，同时服务于公开列表页、详情页和后台管理
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	entities.BaseModel // 嵌入公共 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	// - GORM 标签: type:varchar(255) 指定数据库类型，not null 表示非空
	Title string `gorm:"type:varchar(255);not null"`

	// Slug，URL 友好的唯一标识（例如 "my-first-post"）
	// - 全表唯一，是文章对外的稳定地址；uniqueIndex 由数据库层兜底唯一性
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 摘要，列表页展示的简介文字，可为空
	Excerpt string `gorm:"type:varchar(512)"`

	// 正文，HTML 内容
	// - 类型: longtext，正文可能包含完整的富文本页面，text 的 64KB 上限不够
	Body string `gorm:"type:longtext"`

	// 作者ID，关联用户表
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	// - index: 按作者过滤（"我的文章"、权限校验）是高频查询路径
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 分类列表，JSON 数组存储（例如 ["Tech","Go"]）
	// - 分类是自由文本标签，没有独立生命周期，不单独建关联表；
	//   查询侧通过 JSON_CONTAINS 做成员匹配即可满足过滤需求
	Categories datatypes.JSON `gorm:"type:json"`

	// 标签列表，JSON 数组存储，取舍同 Categories
	Tags datatypes.JSON `gorm:"type:json"`

	// 题图URL，可为空
	FeatureImageURL string `gorm:"type:varchar(1023)"`

	// 状态，枚举类型：0=草稿, 1=已发布
	// - GORM 标签: type:int 指定整数类型，default:0 新文章默认为草稿
	Status enums.PostStatus `gorm:"type:int;default:0;index"`

	// 发布时间
	// - 指针类型: 草稿没有发布时间，数据库存 NULL
	// - 不变式: 仅在草稿→已发布的状态迁移时写入一次，之后不再清空或重置，
	//   同一篇文章反复下线/上线不会打乱公开列表的排序
	PublishedAt *time.Time `gorm:"index"`

	// 浏览量，来自 Redis 计数器的周期性回写，数据库中的值是准实时快照
	ViewCount int64 `gorm:"type:bigint;default:0"`

	// SEO 元数据，均可为空
	MetaTitle       string `gorm:"type:varchar(255)"`
	MetaDescription string `gorm:"type:varchar(512)"`
	CanonicalURL    string `gorm:"type:varchar(1023)"`
}
