package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Xushengqwer/blog_service/auth"
	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/controller"
	"github.com/Xushengqwer/blog_service/middleware"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// Controllers 聚合需要挂到路由上的全部控制器，避免 SetupRouter 的参数列表无限增长。
type Controllers struct {
	Auth         *controller.AuthController
	Post         *controller.PostController
	Comment      *controller.CommentController
	Subscription *controller.SubscriptionController
	Stats        *controller.StatsController
	AI           *controller.AIController
	Upload       *controller.UploadController
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.BlogConfig,
	tokens *auth.TokenManager,
	ctrls Controllers,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，因为我们要自定义 Recovery 和 Logger
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	logger.Debug("已注册全局中间件")

	// --- 按路由挂载的中间件 ---
	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)
	requireAdmin := middleware.RequireRole(enums.RoleSuperadmin)
	// 公开写接口（评论、订阅、注册登录）共用一个按 IP 限流器
	rateLimit := middleware.NewRateLimiter(30, time.Minute).Limit()

	// --- 创建 API 版本分组 ---
	v1 := router.Group("/api/v1/blog")
	logger.Debug("已创建 API/v1/blog 分组")

	// --- 注册控制器路由 ---
	ctrls.Auth.RegisterRoutes(v1, requireAuth, rateLimit)
	ctrls.Post.RegisterRoutes(v1, requireAuth, optionalAuth)
	ctrls.Comment.RegisterRoutes(v1, requireAuth, rateLimit)
	ctrls.Subscription.RegisterRoutes(v1, requireAuth, requireAdmin, rateLimit)
	ctrls.Stats.RegisterRoutes(v1, requireAuth)
	ctrls.AI.RegisterRoutes(v1, requireAuth, rateLimit)
	ctrls.Upload.RegisterRoutes(v1, requireAuth)
	logger.Info("所有控制器路由已注册到 /api/v1/blog 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
