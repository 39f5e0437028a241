package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/query"
)

func strPtr(s string) *string { return &s }

func TestResolvePostQueryAnonymousDefaultsToPublished(t *testing.T) {
	pred, orders, window := ResolvePostQuery(Caller{}, &dto.ListPostsRequest{})

	sql, args := pred.Compile()
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{enums.PostPublished}, args)

	// 三键排序：发布时间、创建时间、ID 兜底，同秒写入的文章跨页顺序稳定
	require.Len(t, orders, 3)
	assert.Equal(t, "published_at DESC", orders[0].Clause())
	assert.Equal(t, "created_at DESC", orders[1].Clause())
	assert.Equal(t, "id DESC", orders[2].Clause())

	assert.Equal(t, 1, window.Page)
	assert.Equal(t, query.DefaultLimit, window.Limit)
}

func TestResolvePostQueryLoggedInDefaultStillFiltered(t *testing.T) {
	// 登录用户不带 mine=true 时同样只能看到已发布文章
	caller := Caller{ID: "user-1", Role: enums.RoleAuthor}
	pred, _, _ := ResolvePostQuery(caller, &dto.ListPostsRequest{})

	sql, args := pred.Compile()
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{enums.PostPublished}, args)
}

func TestResolvePostQueryMineScopesToAuthorIncludingDrafts(t *testing.T) {
	caller := Caller{ID: "user-1", Role: enums.RoleAuthor}
	pred, _, _ := ResolvePostQuery(caller, &dto.ListPostsRequest{Mine: true})

	// 只按作者圈定，不加 status 条件，草稿可见
	sql, args := pred.Compile()
	assert.Equal(t, "author_id = ?", sql)
	assert.Equal(t, []interface{}{"user-1"}, args)
}

func TestResolvePostQueryMineSuperadminUnfiltered(t *testing.T) {
	caller := Caller{ID: "admin-1", Role: enums.RoleSuperadmin}
	pred, _, _ := ResolvePostQuery(caller, &dto.ListPostsRequest{Mine: true})

	sql, args := pred.Compile()
	assert.Empty(t, sql)
	assert.Empty(t, args)
}

func TestResolvePostQueryMineAnonymousFallsBackToPublished(t *testing.T) {
	pred, _, _ := ResolvePostQuery(Caller{}, &dto.ListPostsRequest{Mine: true})

	sql, args := pred.Compile()
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{enums.PostPublished}, args)
}

func TestResolvePostQueryKeywordCannotEscapeOwnership(t *testing.T) {
	// 关键字搜索的 OR 组必须与所有权条件合取，而不是把它吞进析取
	caller := Caller{ID: "user-1", Role: enums.RoleAuthor}
	pred, _, _ := ResolvePostQuery(caller, &dto.ListPostsRequest{Mine: true, Q: strPtr("golang")})

	sql, args := pred.Compile()
	assert.Equal(t,
		"author_id = ? AND (LOWER(title) LIKE ? OR LOWER(body) LIKE ? OR LOWER(excerpt) LIKE ?)",
		sql)
	require.Len(t, args, 4)
	assert.Equal(t, "user-1", args[0])
	assert.Equal(t, "%golang%", args[1])
}

func TestResolvePostQueryCategoryAllMeansNoFilter(t *testing.T) {
	pred, _, _ := ResolvePostQuery(Caller{}, &dto.ListPostsRequest{Category: strPtr("All")})

	sql, _ := pred.Compile()
	assert.Equal(t, "status = ?", sql)
}

func TestResolvePostQueryCategoryAndTagMembership(t *testing.T) {
	pred, _, _ := ResolvePostQuery(Caller{}, &dto.ListPostsRequest{
		Category: strPtr("Tech"),
		Tag:      strPtr("go"),
	})

	sql, args := pred.Compile()
	assert.Equal(t, "status = ? AND JSON_CONTAINS(categories, ?) AND JSON_CONTAINS(tags, ?)", sql)
	require.Len(t, args, 3)
	assert.Equal(t, `"Tech"`, args[1])
	assert.Equal(t, `"go"`, args[2])
}

func TestResolvePostQueryEmptyKeywordIgnored(t *testing.T) {
	pred, _, _ := ResolvePostQuery(Caller{}, &dto.ListPostsRequest{Q: strPtr("")})

	sql, _ := pred.Compile()
	assert.Equal(t, "status = ?", sql)
}

func TestResolvePostQueryWindowNormalization(t *testing.T) {
	_, _, window := ResolvePostQuery(Caller{}, &dto.ListPostsRequest{Page: 3, Limit: 25})
	assert.Equal(t, 3, window.Page)
	assert.Equal(t, 25, window.Limit)
	assert.Equal(t, 50, window.Offset())

	_, _, window = ResolvePostQuery(Caller{}, &dto.ListPostsRequest{Page: -1, Limit: 9999})
	assert.Equal(t, 1, window.Page)
	assert.Equal(t, query.MaxLimit, window.Limit)
}
