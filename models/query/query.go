package query

import (
	"fmt"
	"strings"
)

// Predicate 查询谓词
// - 设计意图: 把列表接口的可见性规则和用户筛选条件表达成一棵可组合的谓词树，
//   由仓库层一次性编译为 SQL 片段。服务层只做纯粹的条件组装，不接触 *gorm.DB，
//   规则本身因此可以脱离数据库做单元测试
// - Compile 返回带 ? 占位符的 SQL 片段和对应参数，空片段表示恒真（不过滤）
type Predicate interface {
	Compile() (sql string, args []interface{})
}

// Eq 等值匹配
type Eq struct {
	Column string
	Value  interface{}
}

func (p Eq) Compile() (string, []interface{}) {
	return p.Column + " = ?", []interface{}{p.Value}
}

// Like 模糊匹配，大小写不敏感
// - 实现: 两侧统一 LOWER，兼容大小写敏感的排序规则；调用方只传原始关键字，
//   通配符在这里拼接
type Like struct {
	Column  string
	Keyword string
}

func (p Like) Compile() (string, []interface{}) {
	return "LOWER(" + p.Column + ") LIKE ?", []interface{}{"%" + escapeLike(strings.ToLower(p.Keyword)) + "%"}
}

// escapeLike 转义 LIKE 模式元字符，用户输入的关键字永远按字面匹配，
// 不会被当成通配符
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// JSONContains JSON 数组成员匹配
// - 用于分类/标签这类 json 列，等价于 MySQL 的 JSON_CONTAINS(col, '"value"')
// - 注意: 参数以 JSON 字符串字面量传入，因此这里手动加引号
type JSONContains struct {
	Column string
	Value  string
}

func (p JSONContains) Compile() (string, []interface{}) {
	return "JSON_CONTAINS(" + p.Column + ", ?)", []interface{}{fmt.Sprintf("%q", p.Value)}
}

// In 集合匹配
// - 空集合编译为恒假条件（1 = 0）：语义上 "属于空集" 不可能成立，
//   避免生成非法的 IN () 语法
type In struct {
	Column string
	Values []interface{}
}

func (p In) Compile() (string, []interface{}) {
	if len(p.Values) == 0 {
		return "1 = 0", nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(p.Values)), ",")
	return p.Column + " IN (" + placeholders + ")", p.Values
}

// And 合取
// - 子节点编译为空的（恒真）会被跳过；全部为空时整体也为空
type And []Predicate

func (p And) Compile() (string, []interface{}) {
	return compileJoin(p, " AND ")
}

// Or 析取
// - 多个子节点时整体加括号，保证与外层 AND 组合时优先级正确
type Or []Predicate

func (p Or) Compile() (string, []interface{}) {
	sql, args := compileJoin(p, " OR ")
	if strings.Contains(sql, " OR ") {
		sql = "(" + sql + ")"
	}
	return sql, args
}

func compileJoin(preds []Predicate, sep string) (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, child := range preds {
		sql, childArgs := child.Compile()
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	return strings.Join(parts, sep), args
}

// Order 排序项，仓库层按出现顺序依次追加
type Order struct {
	Column string
	Desc   bool
}

// Clause 拼接为 ORDER BY 子句中的单项
func (o Order) Clause() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// Window 分页窗口
type Window struct {
	Page  int // 从 1 开始
	Limit int
}

// DefaultLimit 未指定每页大小时的默认值
const DefaultLimit = 10

// MaxLimit 每页大小上限，防止单次查询拖垮数据库
const MaxLimit = 100

// Normalize 归一化分页参数
// - page < 1 归为 1；limit 越界时分别归为默认值和上限
func (w Window) Normalize() Window {
	if w.Page < 1 {
		w.Page = 1
	}
	if w.Limit < 1 {
		w.Limit = DefaultLimit
	}
	if w.Limit > MaxLimit {
		w.Limit = MaxLimit
	}
	return w
}

// Offset 换算为 SQL 偏移量
func (w Window) Offset() int {
	return (w.Page - 1) * w.Limit
}

// Pages 按总条数计算总页数（向上取整）
func (w Window) Pages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(w.Limit) - 1) / int64(w.Limit))
}
