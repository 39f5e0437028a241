package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/service"
)

// StatsController 定义后台仪表盘统计控制器的结构体
type StatsController struct {
	statsService service.StatsService
}

// NewStatsController 构造函数，用于创建 StatsController 实例
func NewStatsController(statsService service.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetDashboardStats 获取仪表盘统计
// @Summary      获取仪表盘统计
// @Description  聚合返回文章总数/已发布数/草稿数、浏览量合计、待审核与已通过的评论数、有效订阅数，以及最近 5 篇文章和 5 条评论。超级管理员看到全站数据，其他用户只统计自己的文章和自己文章名下的评论。浏览量取数据库快照列，与 Redis 实时计数之间允许一个同步周期的滞后。
// @Tags         dashboard (仪表盘)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.DashboardStatsResponseWrapper "统计检索成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/dashboard/stats [get]
func (ctrl *StatsController) GetDashboardStats(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	statsVO, err := ctrl.statsService.GetDashboardStats(c.Request.Context(), caller)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取仪表盘统计失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, statsVO, "统计检索成功")
}

// RegisterRoutes 注册 StatsController 的路由
func (ctrl *StatsController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group.GET("/dashboard/stats", requireAuth, ctrl.GetDashboardStats) // GET /api/v1/blog/dashboard/stats
}
