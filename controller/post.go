package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// PostController 定义文章控制器的结构体
type PostController struct {
	postService service.PostService // 服务层接口，通过依赖注入传入
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// ListPosts 按可见性规则分页获取文章列表
// @Summary      获取文章列表
// @Description  分页获取文章列表。匿名访问只返回已发布文章；携带令牌并传 mine=true 时返回自己的全部文章（含草稿）；超级管理员传 mine=true 返回全站文章。支持关键词、分类、标签筛选。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        mine query bool false "为 true 时返回我的全部文章（含草稿），需要登录" default(false)
// @Param        q query string false "关键词，对标题/正文/摘要做不区分大小写的模糊匹配" maxLength(255)
// @Param        category query string false "分类名，传 All 或留空表示不筛选" maxLength(50)
// @Param        tag query string false "标签名" maxLength(50)
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        limit query int false "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.PostPageResponseWrapper "成功响应，包含文章列表和分页信息"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	// 1. 绑定并验证查询参数
	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	// 2. 调用服务层，调用者身份由可选认证中间件注入（匿名时为零值）
	caller := middleware.CallerFromContext(c)
	pageVO, err := ctrl.postService.ListPosts(c.Request.Context(), caller, &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取文章列表失败: "+err.Error())
		return
	}

	// 3. 成功响应
	response.RespondSuccess(c, pageVO, "文章列表获取成功")
}

// GetPostBySlug 通过 Slug 获取文章详情
// @Summary      获取文章详情 (公开)
// @Description  通过 Slug 检索单篇文章的完整内容。草稿只对其作者和超级管理员可见，其他调用者一律得到 404。已发布文章的访问会异步累加浏览量。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        slug path string true "文章 Slug"
// @Success      200 {object} vo.PostResponseWrapper "文章详情检索成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/posts/slug/{slug} [get]
func (ctrl *PostController) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	// 匿名访客以客户端 IP 作为防刷窗口的访客标识，登录用户用 UserID
	caller := middleware.CallerFromContext(c)
	visitorID := caller.ID
	if visitorID == "" {
		visitorID = c.ClientIP()
	}

	detail, err := ctrl.postService.GetPostBySlug(c.Request.Context(), caller, slug, visitorID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索文章详情失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, detail, "文章详情检索成功")
}

// GetPostByID 通过 ID 获取文章
// @Summary      获取指定ID的文章
// @Description  通过文章 ID 检索完整内容（含作者署名），公开详情页和编辑页回填共用。草稿仅作者和超级管理员可见，其他调用者得到 404。已发布文章的访问计入浏览量。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "文章 ID" Format(uint64)
// @Success      200 {object} vo.PostResponseWrapper "文章检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的文章 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的文章 ID 格式")
		return
	}

	caller := middleware.CallerFromContext(c)

	// 登录用户以用户ID做防刷键，匿名访客退化为客户端IP
	visitorID := caller.ID
	if visitorID == "" {
		visitorID = c.ClientIP()
	}

	detail, err := ctrl.postService.GetPostByID(c.Request.Context(), caller, postID, visitorID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索文章失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, detail, "文章检索成功")
}

// CreatePost 处理创建文章的 HTTP 请求
// @Summary      创建新文章
// @Description  以 JSON 负载创建一篇文章，需要作者及以上角色。Slug 留空时由服务端根据标题生成；缺省直接发布并触发订阅者通知，传 status=0 保存为草稿。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "创建文章请求体"
// @Success      200 {object} vo.PostResponseWrapper "文章创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或 Slug 已被占用"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      403 {object} vo.BaseResponseWrapper "读者角色无发文权限"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	caller := middleware.CallerFromContext(c)
	detail, err := ctrl.postService.CreatePost(c.Request.Context(), caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, myErrors.ErrSlugTaken):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "Slug 已被占用")
		case errors.Is(err, myErrors.ErrForbidden):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "当前角色无发文权限")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建文章失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, detail, "文章创建成功")
}

// UpdatePost 处理更新文章的 HTTP 请求
// @Summary      更新指定ID的文章
// @Description  对文章做增量更新，只提交需要修改的字段。草稿改为已发布会首次写入发布时间并通知订阅者；仅作者或超级管理员可操作。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "文章 ID" Format(uint64)
// @Param        request body dto.UpdatePostRequest true "更新文章请求体（增量字段）"
// @Success      200 {object} vo.PostResponseWrapper "文章更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或 Slug 已被占用"
// @Failure      403 {object} vo.BaseResponseWrapper "无权修改该文章"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的文章 ID 格式")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	caller := middleware.CallerFromContext(c)
	detail, err := ctrl.postService.UpdatePost(c.Request.Context(), caller, postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在")
		case errors.Is(err, myErrors.ErrForbidden):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "无权修改该文章")
		case errors.Is(err, myErrors.ErrSlugTaken):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "Slug 已被占用")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新文章失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, detail, "文章更新成功")
}

// DeletePost 处理删除文章的 HTTP 请求
// @Summary      删除指定ID的文章
// @Description  软删除文章并级联删除其全部评论。仅作者或超级管理员可操作。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "文章 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "文章删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的文章 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "无权删除该文章"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/blog/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的文章 ID 格式")
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := ctrl.postService.DeletePost(c.Request.Context(), caller, postID); err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在")
		case errors.Is(err, myErrors.ErrForbidden):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "无权删除该文章")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除文章失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess[any](c, nil, "文章删除成功")
}

// GetPopularPosts 获取热门文章
// @Summary      获取热门文章列表 (公开)
// @Description  从 Redis 浏览量排行榜取浏览量最高的若干篇已发布文章，不含正文。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        limit query int false "返回数量" format(int32) minimum(1) maximum(20) default(5)
// @Success      200 {object} vo.PostPageResponseWrapper "热门文章检索成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/popular [get]
func (ctrl *PostController) GetPopularPosts(c *gin.Context) {
	limit := int64(constant.PopularPostsLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > 20 {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit 参数")
			return
		}
		limit = parsed
	}

	posts, err := ctrl.postService.GetPopularPosts(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取热门文章失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, posts, "热门文章检索成功")
}

// RegisterRoutes 注册 PostController 的路由
// - 读接口挂可选认证（登录与否决定可见范围），写接口挂强制认证。
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	posts := group.Group("/posts")
	{
		posts.GET("", optionalAuth, ctrl.ListPosts)                // GET    /api/v1/blog/posts
		posts.GET("/popular", ctrl.GetPopularPosts)                // GET    /api/v1/blog/posts/popular
		posts.GET("/slug/:slug", optionalAuth, ctrl.GetPostBySlug) // GET    /api/v1/blog/posts/slug/:slug
		posts.GET("/:post_id", optionalAuth, ctrl.GetPostByID)     // GET    /api/v1/blog/posts/:post_id
		posts.POST("", requireAuth, ctrl.CreatePost)               // POST   /api/v1/blog/posts
		posts.PUT("/:post_id", requireAuth, ctrl.UpdatePost)       // PUT    /api/v1/blog/posts/:post_id
		posts.DELETE("/:post_id", requireAuth, ctrl.DeletePost)    // DELETE /api/v1/blog/posts/:post_id
	}
}
