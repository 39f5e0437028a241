package middleware

import (
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/service"
)

// 身份信息在 gin.Context 中的存放键
const (
	ContextKeyUserID = "blog_user_id"
	ContextKeyRole   = "blog_user_role"
)

// CallerFromContext 从请求上下文取出调用者身份，匿名请求返回零值。
func CallerFromContext(c *gin.Context) service.Caller {
	userID, _ := c.Get(ContextKeyUserID)
	role, _ := c.Get(ContextKeyRole)

	caller := service.Caller{}
	if id, ok := userID.(string); ok {
		caller.ID = id
	}
	if r, ok := role.(enums.UserRole); ok {
		caller.Role = r
	}
	return caller
}

// bearerToken 从 Authorization 头提取 Bearer 令牌，不存在时返回空串。
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth 强制认证中间件。
// - 令牌缺失或非法时返回 401 并中断请求链。
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少访问令牌")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "访问令牌无效或已过期")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth 可选认证中间件。
// - 带合法令牌时注入身份；没有令牌或令牌非法时按匿名放行，不报错。
// - 列表接口用它：同一个接口对登录和未登录用户呈现不同可见范围。
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if claims, err := tokens.Parse(token); err == nil {
				c.Set(ContextKeyUserID, claims.UserID)
				c.Set(ContextKeyRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireRole 最低角色门槛中间件，必须在 RequireAuth 之后挂载。
func RequireRole(minRole enums.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFromContext(c)
		if caller.IsAnonymous() || caller.Role < minRole {
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "当前角色无权访问该接口")
			c.Abort()
			return
		}
		c.Next()
	}
}
