package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CreateComment 访客发表评论
// @Summary      发表评论 (公开)
// @Description  对已发布文章发表评论，无需登录。评论先进入待审核队列，通过审核后才公开展示；对草稿文章留言视为文章不存在。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "文章 ID" Format(uint64)
// @Param        request body dto.CreateCommentRequest true "评论请求体"
// @Success      200 {object} vo.CommentResponseWrapper "评论已提交，等待审核"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的文章 ID 格式")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	commentVO, err := ctrl.commentService.CreateComment(c.Request.Context(), postID, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "发表评论失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, commentVO, "评论已提交，等待审核")
}

// ListApprovedComments 获取文章的已通过评论
// @Summary      获取文章评论列表 (公开)
// @Description  按文章取全部已通过审核的评论，按发表时间倒序排列（最新的在前），不返回评论者邮箱。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "文章 ID" Format(uint64)
// @Success      200 {object} vo.CommentPageResponseWrapper "评论列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的文章 ID 格式"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/comments [get]
func (ctrl *CommentController) ListApprovedComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的文章 ID 格式")
		return
	}

	comments, err := ctrl.commentService.ListApprovedByPost(c.Request.Context(), postID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取评论列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, comments, "评论列表检索成功")
}

// ListForModeration 后台评论审核队列
// @Summary      获取评论审核队列
// @Description  分页获取评论审核队列，status 筛选可选，缺省返回全部状态。超级管理员看到全站评论；普通作者只能看到自己文章名下的评论。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        status query int false "审核状态 (0:待审核, 1:已通过, 2:已拒绝)，不传返回全部" format(int32) Enums(0,1,2)
// @Param        post_id query uint64 false "按文章筛选" Format(uint64)
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        limit query int false "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.CommentPageResponseWrapper "审核队列检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/comments [get]
func (ctrl *CommentController) ListForModeration(c *gin.Context) {
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	caller := middleware.CallerFromContext(c)
	pageVO, err := ctrl.commentService.ListForModeration(c.Request.Context(), caller, &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取审核队列失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, pageVO, "审核队列检索成功")
}

// ModerateComment 审核评论
// @Summary      审核评论
// @Description  把待审核评论置为已通过或已拒绝。仅评论所属文章的作者或超级管理员可操作。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "评论 ID" Format(uint64)
// @Param        request body dto.ModerateCommentRequest true "审核请求体"
// @Success      200 {object} vo.CommentResponseWrapper "评论审核成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "无权审核该评论"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/comments/{comment_id}/status [put]
func (ctrl *CommentController) ModerateComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的评论 ID 格式")
		return
	}

	var req dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	caller := middleware.CallerFromContext(c)
	commentVO, err := ctrl.commentService.ModerateComment(c.Request.Context(), caller, commentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "评论不存在")
		case errors.Is(err, myErrors.ErrForbidden):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "无权审核该评论")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "审核评论失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, commentVO, "评论审核成功")
}

// DeleteComment 删除评论
// @Summary      删除指定ID的评论
// @Description  软删除一条评论，权限规则与审核一致。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "评论 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "评论删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的评论 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "无权删除该评论"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/comments/{comment_id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的评论 ID 格式")
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := ctrl.commentService.DeleteComment(c.Request.Context(), caller, commentID); err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "评论不存在")
		case errors.Is(err, myErrors.ErrForbidden):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "无权删除该评论")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除评论失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// RegisterRoutes 注册 CommentController 的路由
// - 公开的发表接口挂限流，审核相关接口挂强制认证。
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup, requireAuth, rateLimit gin.HandlerFunc) {
	group.POST("/posts/:post_id/comments", rateLimit, ctrl.CreateComment) // POST /api/v1/blog/posts/:post_id/comments
	group.GET("/posts/:post_id/comments", ctrl.ListApprovedComments)      // GET  /api/v1/blog/posts/:post_id/comments

	comments := group.Group("/comments", requireAuth)
	{
		comments.GET("", ctrl.ListForModeration)                  // GET    /api/v1/blog/comments
		comments.PUT("/:comment_id/status", ctrl.ModerateComment) // PUT    /api/v1/blog/comments/:comment_id/status
		comments.DELETE("/:comment_id", ctrl.DeleteComment)       // DELETE /api/v1/blog/comments/:comment_id
	}
}
