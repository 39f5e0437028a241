package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrForbidden 表示调用者身份合法但无权执行该操作（对应 HTTP 403）
var ErrForbidden = errors.New("forbidden: caller lacks permission for this resource")

// ErrInvalidCredentials 表示登录邮箱或密码不匹配
// - 注意: 对外统一返回该错误，不区分 "邮箱不存在" 和 "密码错误"，避免探测账号
var ErrInvalidCredentials = errors.New("auth: invalid email or password")

// ErrEmailTaken 表示注册邮箱已被占用
var ErrEmailTaken = errors.New("auth: email already registered")

// ErrSlugTaken 表示文章 Slug 已被其他文章占用
var ErrSlugTaken = errors.New("post: slug already in use")

// ErrDuplicateSubscription 表示邮箱已处于有效订阅状态
var ErrDuplicateSubscription = errors.New("subscription: email already subscribed")
