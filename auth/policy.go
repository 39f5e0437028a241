package auth

import "github.com/Xushengqwer/blog_service/models/enums"

// CanMutate 资源修改权限的统一裁决函数
// - 规则: 超级管理员可以改任何资源；其他角色只能改自己名下的资源
// - 文章的编辑/删除、评论的审核/删除（按所属文章的作者判断）都走这一个入口，
//   避免各处散落各自的角色判断
func CanMutate(callerID string, callerRole enums.UserRole, ownerID string) bool {
	if callerRole == enums.RoleSuperadmin {
		return true
	}
	return callerID != "" && callerID == ownerID
}
