package service

import "strings"

// NormalizeEmail 统一邮箱的存储形态：去掉首尾空白并转小写。
// 账户、订阅、评论三处的邮箱都经过这里，确保 "Foo@Bar.com " 和 "foo@bar.com"
// 在唯一性判断与退订匹配时视为同一地址。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
