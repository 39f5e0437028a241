package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// SubscriptionController 定义新闻通讯订阅控制器的结构体
type SubscriptionController struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionController 构造函数，用于创建 SubscriptionController 实例
func NewSubscriptionController(subscriptionService service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Subscribe 订阅新闻通讯
// @Summary      订阅新闻通讯 (公开)
// @Description  用邮箱订阅新文章通知。已退订的邮箱会被重新激活；已处于有效订阅的邮箱返回 400。
// @Tags         subscriptions (订阅)
// @Accept       json
// @Produce      json
// @Param        request body dto.SubscribeRequest true "订阅请求体"
// @Success      200 {object} vo.SubscriptionResponseWrapper "订阅成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的邮箱或已订阅"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/subscriptions [post]
func (ctrl *SubscriptionController) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	subVO, err := ctrl.subscriptionService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, myErrors.ErrDuplicateSubscription) {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "该邮箱已订阅")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "订阅失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, subVO, "订阅成功")
}

// Unsubscribe 退订新闻通讯
// @Summary      退订新闻通讯 (公开)
// @Description  按邮箱退订。对不存在或已退订的邮箱同样返回成功，不暴露名单内容。
// @Tags         subscriptions (订阅)
// @Accept       json
// @Produce      json
// @Param        request body dto.UnsubscribeRequest true "退订请求体"
// @Success      200 {object} vo.BaseResponseWrapper "退订成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的邮箱格式"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/subscriptions/unsubscribe [post]
func (ctrl *SubscriptionController) Unsubscribe(c *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	if err := ctrl.subscriptionService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "退订失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "退订成功")
}

// ListSubscriptions 后台分页查看订阅名单
// @Summary      获取订阅名单
// @Description  分页返回订阅记录，可选仅看有效订阅。仅超级管理员可访问。
// @Tags         subscriptions (订阅)
// @Accept       json
// @Produce      json
// @Param        active_only query bool false "仅返回有效订阅" default(false)
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        limit query int false "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.SubscriptionPageResponseWrapper "订阅名单检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      403 {object} vo.BaseResponseWrapper "当前角色无权访问"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/subscriptions [get]
func (ctrl *SubscriptionController) ListSubscriptions(c *gin.Context) {
	var req dto.ListSubscriptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.subscriptionService.ListSubscriptions(c.Request.Context(), req.ActiveOnly, req.Page, req.Limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取订阅名单失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, pageVO, "订阅名单检索成功")
}

// RegisterRoutes 注册 SubscriptionController 的路由
// - 订阅与退订公开但挂限流，名单查看仅限超级管理员。
func (ctrl *SubscriptionController) RegisterRoutes(group *gin.RouterGroup, requireAuth, requireAdmin, rateLimit gin.HandlerFunc) {
	subs := group.Group("/subscriptions")
	{
		subs.POST("", rateLimit, ctrl.Subscribe)                         // POST /api/v1/blog/subscriptions
		subs.POST("/unsubscribe", rateLimit, ctrl.Unsubscribe)           // POST /api/v1/blog/subscriptions/unsubscribe
		subs.GET("", requireAuth, requireAdmin, ctrl.ListSubscriptions)  // GET  /api/v1/blog/subscriptions
	}
}
