package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// AIController 定义 AI 辅助写作控制器的结构体
type AIController struct {
	aiService service.AIService
}

// NewAIController 构造函数，用于创建 AIController 实例
func NewAIController(aiService service.AIService) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// GenerateTitles 根据主题生成候选标题
// @Summary      AI 生成候选标题
// @Description  根据主题和关键词让大模型给出 3 个候选标题。
// @Tags         ai (辅助写作)
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateTitlesRequest true "标题生成请求体"
// @Success      200 {object} vo.AITitlesResponseWrapper "标题生成成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "模型调用失败"
// @Security     BearerAuth
// @Router       /api/v1/blog/ai/generate-titles [post]
func (ctrl *AIController) GenerateTitles(c *gin.Context) {
	var req dto.GenerateTitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	titlesVO, err := ctrl.aiService.GenerateTitles(c.Request.Context(), req.Topic, req.Keywords)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "生成标题失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, titlesVO, "标题生成成功")
}

// GenerateContent 根据标题生成文章正文
// @Summary      AI 生成正文
// @Description  根据标题、关键词和语气生成一段可直接写入编辑器的 HTML 正文片段（经过清洗，不含整页骨架和 Markdown 围栏）。
// @Tags         ai (辅助写作)
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateContentRequest true "正文生成请求体"
// @Success      200 {object} vo.AIDraftResponseWrapper "正文生成成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "模型调用失败"
// @Security     BearerAuth
// @Router       /api/v1/blog/ai/generate-content [post]
func (ctrl *AIController) GenerateContent(c *gin.Context) {
	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	draftVO, err := ctrl.aiService.GenerateContent(c.Request.Context(), req.Title, req.Keywords, req.Tone)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "生成正文失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, draftVO, "正文生成成功")
}

// ImproveContent 润色既有正文
// @Summary      AI 润色正文
// @Description  在不改变含义和标签结构的前提下润色正文，返回清洗后的 HTML 片段。
// @Tags         ai (辅助写作)
// @Accept       json
// @Produce      json
// @Param        request body dto.ImproveContentRequest true "润色请求体"
// @Success      200 {object} vo.AIDraftResponseWrapper "润色成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "模型调用失败"
// @Security     BearerAuth
// @Router       /api/v1/blog/ai/improve-content [post]
func (ctrl *AIController) ImproveContent(c *gin.Context) {
	var req dto.ImproveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	draftVO, err := ctrl.aiService.ImproveContent(c.Request.Context(), req.Content)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "润色正文失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, draftVO, "润色成功")
}

// SuggestCategory 从候选列表中推荐分类
// @Summary      AI 推荐分类
// @Description  让大模型从请求给出的候选分类中选出最匹配正文的一个，返回值保证取自候选列表。
// @Tags         ai (辅助写作)
// @Accept       json
// @Produce      json
// @Param        request body dto.SuggestCategoryRequest true "分类推荐请求体"
// @Success      200 {object} vo.AICategoryResponseWrapper "推荐成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "模型调用失败"
// @Security     BearerAuth
// @Router       /api/v1/blog/ai/suggest-category [post]
func (ctrl *AIController) SuggestCategory(c *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	categoryVO, err := ctrl.aiService.SuggestCategory(c.Request.Context(), req.Content, req.Categories)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "推荐分类失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, categoryVO, "推荐成功")
}

// RegisterRoutes 注册 AIController 的路由
// - 模型调用成本高，除认证外额外挂限流。
func (ctrl *AIController) RegisterRoutes(group *gin.RouterGroup, requireAuth, rateLimit gin.HandlerFunc) {
	aiGroup := group.Group("/ai", requireAuth, rateLimit)
	{
		aiGroup.POST("/generate-titles", ctrl.GenerateTitles)   // POST /api/v1/blog/ai/generate-titles
		aiGroup.POST("/generate-content", ctrl.GenerateContent) // POST /api/v1/blog/ai/generate-content
		aiGroup.POST("/improve-content", ctrl.ImproveContent)   // POST /api/v1/blog/ai/improve-content
		aiGroup.POST("/suggest-category", ctrl.SuggestCategory) // POST /api/v1/blog/ai/suggest-category
	}
}
