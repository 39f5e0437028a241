package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/service"
)

// maxUploadMemory 表单解析的内存上限，超出部分落入临时磁盘文件
const maxUploadMemory = 32 << 20

// UploadController 定义媒体上传控制器的结构体
type UploadController struct {
	uploadService service.UploadService
}

// NewUploadController 构造函数，用于创建 UploadController 实例
func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadImage 上传题图等图片
// @Summary      上传图片
// @Description  以 multipart/form-data 上传一张图片到对象存储，返回公开访问 URL，用于文章题图或正文插图。
// @Tags         uploads (上传)
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "图片文件"
// @Success      200 {object} vo.UploadResultResponseWrapper "上传成功，返回访问 URL"
// @Failure      400 {object} vo.BaseResponseWrapper "未携带文件或表单解析失败"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "上传到对象存储失败"
// @Security     BearerAuth
// @Router       /api/v1/blog/uploads/image [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "解析表单数据失败: "+err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "未携带图片文件: "+err.Error())
		return
	}

	caller := middleware.CallerFromContext(c)
	resultVO, err := ctrl.uploadService.UploadImage(c.Request.Context(), caller.ID, fileHeader)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "上传图片失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, resultVO, "图片上传成功")
}

// RegisterRoutes 注册 UploadController 的路由
func (ctrl *UploadController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group.POST("/uploads/image", requireAuth, ctrl.UploadImage) // POST /api/v1/blog/uploads/image
}
