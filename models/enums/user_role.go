package enums

// UserRole 表示账号角色，数值越大权限越高。
// - 0 = 读者 (Reader)：仅浏览，无后台权限。
// - 1 = 作者 (Author)：可创建、管理自己的文章。
// - 2 = 管理员 (Admin)：与作者等同的内容权限（历史原因保留两档）。
// - 3 = 超级管理员 (Superadmin)：跨所有者的全量权限。
type UserRole int

const (
	RoleReader     UserRole = 0 // 读者
	RoleAuthor     UserRole = 1 // 作者
	RoleAdmin      UserRole = 2 // 管理员
	RoleSuperadmin UserRole = 3 // 超级管理员
)

// IsValid 校验角色值是否在合法范围内。
func (r UserRole) IsValid() bool {
	return r >= RoleReader && r <= RoleSuperadmin
}

// CanWritePosts 判断该角色是否具备内容创作权限（作者及以上）。
func (r UserRole) CanWritePosts() bool {
	return r >= RoleAuthor
}

// String 返回角色的可读名称，主要用于日志输出。
func (r UserRole) String() string {
	switch r {
	case RoleReader:
		return "reader"
	case RoleAuthor:
		return "author"
	case RoleAdmin:
		return "admin"
	case RoleSuperadmin:
		return "superadmin"
	default:
		return "unknown"
	}
}
