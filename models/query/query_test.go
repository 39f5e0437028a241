package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqCompile(t *testing.T) {
	sql, args := Eq{Column: "status", Value: 1}.Compile()
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{1}, args)
}

func TestLikeCompileLowersKeyword(t *testing.T) {
	sql, args := Like{Column: "title", Keyword: "GoLang"}.Compile()
	assert.Equal(t, "LOWER(title) LIKE ?", sql)
	assert.Equal(t, []interface{}{"%golang%"}, args)
}

func TestLikeCompileEscapesWildcards(t *testing.T) {
	sql, args := Like{Column: "title", Keyword: `100%_sure\`}.Compile()
	assert.Equal(t, "LOWER(title) LIKE ?", sql)
	assert.Equal(t, []interface{}{`%100\%\_sure\\%`}, args)
}

func TestJSONContainsQuotesValue(t *testing.T) {
	sql, args := JSONContains{Column: "categories", Value: "Tech"}.Compile()
	assert.Equal(t, "JSON_CONTAINS(categories, ?)", sql)
	assert.Equal(t, []interface{}{`"Tech"`}, args)
}

func TestInCompile(t *testing.T) {
	sql, args := In{Column: "post_id", Values: []interface{}{uint64(1), uint64(2)}}.Compile()
	assert.Equal(t, "post_id IN (?,?)", sql)
	assert.Len(t, args, 2)
}

func TestInEmptyIsAlwaysFalse(t *testing.T) {
	sql, args := In{Column: "post_id"}.Compile()
	assert.Equal(t, "1 = 0", sql)
	assert.Empty(t, args)
}

func TestAndSkipsEmptyChildren(t *testing.T) {
	sql, args := And{And{}, Eq{Column: "status", Value: 1}}.Compile()
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{1}, args)
}

func TestAndJoinsChildren(t *testing.T) {
	sql, args := And{
		Eq{Column: "status", Value: 1},
		Eq{Column: "author_id", Value: "u1"},
	}.Compile()
	assert.Equal(t, "status = ? AND author_id = ?", sql)
	assert.Equal(t, []interface{}{1, "u1"}, args)
}

func TestOrWrapsInParentheses(t *testing.T) {
	sql, args := Or{
		Like{Column: "title", Keyword: "go"},
		Like{Column: "body", Keyword: "go"},
	}.Compile()
	assert.Equal(t, "(LOWER(title) LIKE ? OR LOWER(body) LIKE ?)", sql)
	assert.Len(t, args, 2)
}

func TestOrSingleChildNoParentheses(t *testing.T) {
	sql, _ := Or{Eq{Column: "status", Value: 1}}.Compile()
	assert.Equal(t, "status = ?", sql)
}

func TestAndWithNestedOrKeepsPrecedence(t *testing.T) {
	// 所有权条件必须与关键字搜索取交集，而不是被 OR 吞掉
	sql, args := And{
		Eq{Column: "author_id", Value: "u1"},
		Or{
			Like{Column: "title", Keyword: "x"},
			Like{Column: "excerpt", Keyword: "x"},
		},
	}.Compile()
	assert.Equal(t, "author_id = ? AND (LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?)", sql)
	assert.Equal(t, "u1", args[0])
}

func TestEmptyAndIsUnfiltered(t *testing.T) {
	sql, args := And{}.Compile()
	assert.Empty(t, sql)
	assert.Empty(t, args)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "published_at DESC", Order{Column: "published_at", Desc: true}.Clause())
	assert.Equal(t, "created_at ASC", Order{Column: "created_at"}.Clause())
}

func TestWindowNormalize(t *testing.T) {
	w := Window{Page: 0, Limit: 0}.Normalize()
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, DefaultLimit, w.Limit)

	w = Window{Page: -3, Limit: 1000}.Normalize()
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, MaxLimit, w.Limit)

	w = Window{Page: 5, Limit: 20}.Normalize()
	assert.Equal(t, 5, w.Page)
	assert.Equal(t, 20, w.Limit)
}

func TestWindowOffset(t *testing.T) {
	assert.Equal(t, 0, Window{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Window{Page: 5, Limit: 10}.Offset())
}

func TestWindowPages(t *testing.T) {
	w := Window{Page: 1, Limit: 10}
	assert.Equal(t, 0, w.Pages(0))
	assert.Equal(t, 1, w.Pages(1))
	assert.Equal(t, 1, w.Pages(10))
	assert.Equal(t, 2, w.Pages(11))
}
