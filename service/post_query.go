package service

import (
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/query"
)

// Caller 请求方的身份快照，由认证中间件从令牌解析后注入。
// - 匿名请求用零值表示（ID 为空）。
type Caller struct {
	ID   string
	Role enums.UserRole
}

// IsAnonymous 判断是否为匿名调用者。
func (c Caller) IsAnonymous() bool {
	return c.ID == ""
}

// ResolvePostQuery 把调用者身份和列表筛选参数组装成一棵查询谓词树。
//
// 可见性规则（所有权条件永远在合取的最外层，后续的筛选条件无法绕过它）：
//   - 默认：只看已发布文章，无论是否登录；
//   - mine=true 且调用者为超级管理员：不加任何所有权条件，可以看到所有人的草稿；
//   - mine=true 且为普通登录用户：只按 author_id 圈定自己的文章，草稿和已发布都可见；
//   - mine=true 但未登录：按匿名处理，退回已发布范围。
//
// 筛选条件：
//   - q 关键字在标题/正文/摘要上做大小写不敏感的模糊匹配，三者取析取后与所有权条件合取；
//   - category 为 "All" 时视为不筛选，其余值做 JSON 数组成员匹配；tag 同理（无 "All" 约定）。
//
// 排序固定为发布时间倒序、创建时间倒序、ID 倒序三键（草稿没有发布时间，
// 同秒批量导入的文章靠 ID 键保证跨页顺序稳定）。
func ResolvePostQuery(caller Caller, req *dto.ListPostsRequest) (query.Predicate, []query.Order, query.Window) {
	var conditions query.And

	switch {
	case req.Mine && !caller.IsAnonymous() && caller.Role == enums.RoleSuperadmin:
		// 超级管理员的 mine 是全局视角，不加条件
	case req.Mine && !caller.IsAnonymous():
		conditions = append(conditions, query.Eq{Column: "author_id", Value: caller.ID})
	default:
		conditions = append(conditions, query.Eq{Column: "status", Value: enums.PostPublished})
	}

	if req.Q != nil && *req.Q != "" {
		conditions = append(conditions, query.Or{
			query.Like{Column: "title", Keyword: *req.Q},
			query.Like{Column: "body", Keyword: *req.Q},
			query.Like{Column: "excerpt", Keyword: *req.Q},
		})
	}

	if req.Category != nil && *req.Category != "" && *req.Category != "All" {
		conditions = append(conditions, query.JSONContains{Column: "categories", Value: *req.Category})
	}

	if req.Tag != nil && *req.Tag != "" {
		conditions = append(conditions, query.JSONContains{Column: "tags", Value: *req.Tag})
	}

	orders := []query.Order{
		{Column: "published_at", Desc: true},
		{Column: "created_at", Desc: true},
		{Column: "id", Desc: true},
	}

	window := query.Window{Page: req.Page, Limit: req.Limit}.Normalize()

	return conditions, orders, window
}
