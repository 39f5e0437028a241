package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// AuthController 定义账户控制器的结构体
type AuthController struct {
	accountService service.AccountService
}

// NewAuthController 构造函数，用于创建 AuthController 实例
func NewAuthController(accountService service.AccountService) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

// Register 注册新账户
// @Summary      注册账户
// @Description  用邮箱和密码注册一个作者账户，成功后直接返回访问令牌（注册即登录）。
// @Tags         auth (账户)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册请求体"
// @Success      200 {object} vo.AuthResponseWrapper "注册成功，返回令牌和用户资料"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或邮箱已被注册"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	authVO, err := ctrl.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrEmailTaken) {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "该邮箱已被注册")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "注册失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, authVO, "注册成功")
}

// Login 登录
// @Summary      登录
// @Description  校验邮箱和密码，成功后签发访问令牌。邮箱不存在与密码错误返回相同的提示，不暴露账户存在性。
// @Tags         auth (账户)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录请求体"
// @Success      200 {object} vo.AuthResponseWrapper "登录成功，返回令牌和用户资料"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "邮箱或密码错误"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	authVO, err := ctrl.accountService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrInvalidCredentials) {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "邮箱或密码错误")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "登录失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, authVO, "登录成功")
}

// GetProfile 获取当前登录用户的资料
// @Summary      获取我的资料
// @Description  返回当前令牌对应用户的资料。
// @Tags         auth (账户)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.UserResponseWrapper "资料检索成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/auth/me [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	userVO, err := ctrl.accountService.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户不存在")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取资料失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, userVO, "资料检索成功")
}

// UpdateProfile 更新当前登录用户的资料
// @Summary      更新我的资料
// @Description  对当前用户资料做增量更新，只提交需要修改的字段（昵称、邮箱、头像、密码）。新邮箱被占用时返回 400。
// @Tags         auth (账户)
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "更新资料请求体（增量字段）"
// @Success      200 {object} vo.UserResponseWrapper "资料更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/auth/me [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	caller := middleware.CallerFromContext(c)
	userVO, err := ctrl.accountService.UpdateProfile(c.Request.Context(), caller.ID, &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrEmailTaken) {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "该邮箱已被其他账户使用")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新资料失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, userVO, "资料更新成功")
}

// RegisterRoutes 注册 AuthController 的路由
// - 注册和登录是公开接口并挂限流，资料接口挂强制认证。
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup, requireAuth, rateLimit gin.HandlerFunc) {
	authGroup := group.Group("/auth")
	{
		authGroup.POST("/register", rateLimit, ctrl.Register) // POST /api/v1/blog/auth/register
		authGroup.POST("/login", rateLimit, ctrl.Login)       // POST /api/v1/blog/auth/login
		authGroup.GET("/me", requireAuth, ctrl.GetProfile)    // GET  /api/v1/blog/auth/me
		authGroup.PUT("/me", requireAuth, ctrl.UpdateProfile) // PUT  /api/v1/blog/auth/me
	}
}
